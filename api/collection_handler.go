package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rpupo63/devfolio-backend/admin"
	"github.com/rpupo63/devfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// formPointer is satisfied by *F when F is the editor form of T.
type formPointer[T any, F any] interface {
	*F
	admin.Form[T]
}

// EditableRecord is a record together with the editor form seeded from it
type EditableRecord[T any, F any] struct {
	Record *T `json:"record"`
	Form   F  `json:"form"`
}

// collectionHandler serves the list and editor endpoints of one ordered collection. The typed
// work is bound in newCollectionHandler so the handler itself stays non-generic.
type collectionHandler struct {
	responder Responder
	logger    zerolog.Logger
	entity    string

	list   func(ctx context.Context) (any, error)
	fetch  func(ctx context.Context, id uuid.UUID) (any, error)
	create func(w http.ResponseWriter, r *http.Request) (any, error)
	update func(w http.ResponseWriter, r *http.Request, id uuid.UUID) (any, error)
	remove func(ctx context.Context, id uuid.UUID) error
}

func newCollectionHandler[T any, F any, PF formPointer[T, F]](entity string, collection *services.Collection[T], seed func(*T) F) collectionHandler {
	logger := log.With().Str("handlerName", entity+"Handler").Logger()
	editor := admin.NewEditor(collection)

	return collectionHandler{
		responder: NewResponder(logger),
		logger:    logger,
		entity:    entity,
		list: func(ctx context.Context) (any, error) {
			return collection.List(ctx)
		},
		fetch: func(ctx context.Context, id uuid.UUID) (any, error) {
			row, err := collection.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return EditableRecord[T, F]{Record: row, Form: seed(row)}, nil
		},
		create: func(w http.ResponseWriter, r *http.Request) (any, error) {
			var form F
			if err := decodeJSON(w, r, &form); err != nil {
				return nil, err
			}
			return editor.Create(r.Context(), PF(&form))
		},
		update: func(w http.ResponseWriter, r *http.Request, id uuid.UUID) (any, error) {
			var form F
			if err := decodeJSON(w, r, &form); err != nil {
				return nil, err
			}
			return editor.Update(r.Context(), id, PF(&form))
		},
		remove: editor.Delete,
	}
}

// listAll returns the collection in display order; an empty list means nothing was added yet
// @Summary List collection
// @Tags Collections
// @Produce json
// @Success 200 {array} object "Records in display order"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /api/{collection} [get]
func (h collectionHandler) listAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := h.list(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", h.entity, err))
			return
		}
		h.responder.WriteJSON(w, rows)
	}
}

// getOne returns one record and its seeded editor form
// @Summary Get record for editing
// @Tags Collections
// @Produce json
// @Param id path string true "Record ID" format(uuid)
// @Success 200 {object} object "Record and editor form"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid id"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /api/{collection}/{id} [get]
func (h collectionHandler) getOne() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		record, err := h.fetch(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", h.entity, err))
			return
		}
		h.responder.WriteJSON(w, record)
	}
}

// createOne adds a record from its editor form
// @Summary Create record
// @Tags Collections
// @Accept json
// @Produce json
// @Success 201 {object} object "Created record"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing required field"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden - Admin role required"
// @Router /api/{collection} [post]
func (h collectionHandler) createOne() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		row, err := h.create(w, r)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", h.entity, err))
			return
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, row)
	}
}

// updateOne overwrites a record with its editor form
// @Summary Update record
// @Tags Collections
// @Accept json
// @Produce json
// @Param id path string true "Record ID" format(uuid)
// @Success 200 {object} object "Updated record"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /api/{collection}/{id} [put]
func (h collectionHandler) updateOne() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		row, err := h.update(w, r, id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", h.entity, err))
			return
		}
		h.responder.WriteJSON(w, row)
	}
}

// deleteOne removes a record
// @Summary Delete record
// @Tags Collections
// @Produce json
// @Param id path string true "Record ID" format(uuid)
// @Success 200 {object} StatusResponse "Success message"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /api/{collection}/{id} [delete]
func (h collectionHandler) deleteOne() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := h.remove(r.Context(), id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", h.entity, err))
			return
		}
		h.responder.WriteJSON(w, StatusResponse{Status: "success", Message: h.entity + " deleted successfully"})
	}
}
