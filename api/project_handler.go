package api

import (
	"net/http"

	"github.com/rpupo63/devfolio-backend/admin"
	"github.com/rpupo63/devfolio-backend/errs"
	"github.com/rpupo63/devfolio-backend/models"
	"github.com/rpupo63/devfolio-backend/services"
	"github.com/rpupo63/devfolio-backend/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  *services.Collection[models.Project]
	editor    *admin.ProjectEditor
}

func newProjectHandler(projects *services.Collection[models.Project], store storage.Store) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
		editor:    admin.NewProjectEditor(projects, store),
	}
}

// ProjectCollection is the full project list in display order
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total"`
}

// getAllProjects retrieves all projects
// @Summary Get all projects
// @Description Retrieves all projects ordered by display order, newest first within the same order
// @Tags Projects
// @Produce json
// @Success 200 {object} ProjectCollection "List of projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /api/projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

// getProject retrieves a project and its seeded editor form
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Success 200 {object} EditableRecord[models.Project,admin.ProjectForm] "Project and editor form"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid id"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /api/projects/{id} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projects.Get(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		h.responder.WriteJSON(w, EditableRecord[models.Project, admin.ProjectForm]{
			Record: project,
			Form:   admin.ProjectFormFrom(project),
		})
	}
}

// createProject creates a new project
// @Summary Create project
// @Description Accepts JSON, or multipart form fields with an optional "thumbnail" image. The
// @Description thumbnail is uploaded before the project is saved; a failed upload aborts the save.
// @Tags Projects
// @Accept json,mpfd
// @Produce json
// @Param project body admin.ProjectForm true "Project data"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 502 {object} ErrorResponse "Bad Gateway - Thumbnail upload failed"
// @Router /api/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, thumbnail, closeFn, err := h.readProjectForm(w, r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer closeFn()

		project, err := h.editor.CreateWithThumbnail(r.Context(), form, thumbnail)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, project)
	}
}

// updateProject updates an existing project
// @Summary Update project
// @Tags Projects
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Param project body admin.ProjectForm true "Updated project data"
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /api/projects/{id} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		form, thumbnail, closeFn, err := h.readProjectForm(w, r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer closeFn()

		project, err := h.editor.UpdateWithThumbnail(r.Context(), id, form, thumbnail)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Success 200 {object} StatusResponse "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /api/projects/{id} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.editor.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.responder.WriteJSON(w, StatusResponse{Status: "success", Message: "project deleted successfully"})
	}
}

// ThumbnailResponse carries the public URL of an uploaded thumbnail
type ThumbnailResponse struct {
	URL string `json:"url"`
}

// uploadThumbnail stores a thumbnail ahead of saving the project form
// @Summary Upload project thumbnail
// @Tags Projects
// @Accept mpfd
// @Produce json
// @Param thumbnail formData file true "Image file"
// @Success 201 {object} ThumbnailResponse "Public URL of the thumbnail"
// @Failure 400 {object} ErrorResponse "Bad Request - No file"
// @Failure 415 {object} ErrorResponse "Unsupported Media Type - Not an image"
// @Router /api/projects/thumbnail [post]
func (h projectHandler) uploadThumbnail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseMultipart(w, r); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		upload, file, err := formUpload(r, "thumbnail")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if upload == nil {
			h.responder.WriteError(w, errs.NewEmptyUploadError())
			return
		}
		defer file.Close()

		url, err := h.editor.UploadThumbnail(r.Context(), *upload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, ThumbnailResponse{URL: url})
	}
}

// readProjectForm decodes the project form from JSON or multipart input.
func (h projectHandler) readProjectForm(w http.ResponseWriter, r *http.Request) (*admin.ProjectForm, *admin.Upload, func(), error) {
	noop := func() {}
	if !isMultipart(r) {
		var form admin.ProjectForm
		if err := decodeJSON(w, r, &form); err != nil {
			return nil, nil, noop, err
		}
		return &form, nil, noop, nil
	}

	if err := parseMultipart(w, r); err != nil {
		return nil, nil, noop, err
	}
	order, err := formInt(r, "display_order")
	if err != nil {
		return nil, nil, noop, err
	}
	form := &admin.ProjectForm{
		Title:         r.FormValue("title"),
		Description:   r.FormValue("description"),
		TechStackTags: r.FormValue("tech_stack_tags"),
		GithubURL:     r.FormValue("github_url"),
		DemoURL:       r.FormValue("demo_url"),
		ThumbnailURL:  r.FormValue("thumbnail_url"),
		DisplayOrder:  order,
	}
	upload, file, err := formUpload(r, "thumbnail")
	if err != nil {
		return nil, nil, noop, err
	}
	if upload == nil {
		return form, nil, noop, nil
	}
	return form, upload, func() { file.Close() }, nil
}
