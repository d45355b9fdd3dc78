package pages

import (
	"context"

	"github.com/rpupo63/devfolio-backend/models"
)

const ProjectsPageSize = 9

var noProjects = EmptyState{
	Title:       "No projects yet",
	Description: "Projects haven't been added. If you're the admin, head to Settings to add some.",
}

// ProjectFilter is the projects page state: at most one active tag and a 1-based page.
type ProjectFilter struct {
	Tag  string `json:"tag,omitempty"`
	Page int    `json:"page"`
}

// Toggle selects tag, or clears it when it is already active. The page goes back to 1.
func (f ProjectFilter) Toggle(tag string) ProjectFilter {
	if f.Tag == tag {
		return ProjectFilter{Page: 1}
	}
	return ProjectFilter{Tag: tag, Page: 1}
}

func (f ProjectFilter) Clear() ProjectFilter {
	return ProjectFilter{Page: 1}
}

func (f ProjectFilter) Match(p *models.Project) bool {
	return f.Tag == "" || p.HasTag(f.Tag)
}

type ProjectsPage struct {
	Empty      *EmptyState       `json:"empty,omitempty"`
	Projects   []*models.Project `json:"projects"`
	Tags       []string          `json:"tags"`
	ActiveTag  string            `json:"activeTag,omitempty"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
	PageSize   int               `json:"pageSize"`
	Matched    int               `json:"matched"`
	Total      int               `json:"total"`
}

func (b *Builder) ProjectsPage(ctx context.Context, filter ProjectFilter) (ProjectsPage, error) {
	projects, err := b.projects.List(ctx)
	if err != nil {
		b.logger.Error().Err(err).Msg("failed to load projects page")
		return ProjectsPage{}, err
	}
	return buildProjectsPage(projects, filter), nil
}

func buildProjectsPage(projects []*models.Project, filter ProjectFilter) ProjectsPage {
	if len(projects) == 0 {
		empty := noProjects
		return ProjectsPage{Empty: &empty, Projects: []*models.Project{}, Tags: []string{}, Page: 1, TotalPages: 1, PageSize: ProjectsPageSize}
	}

	matched := make([]*models.Project, 0, len(projects))
	for _, p := range projects {
		if filter.Match(p) {
			matched = append(matched, p)
		}
	}
	items, page, totalPages := Paginate(matched, filter.Page, ProjectsPageSize)
	return ProjectsPage{
		Projects:   items,
		Tags:       DistinctTags(projects),
		ActiveTag:  filter.Tag,
		Page:       page,
		TotalPages: totalPages,
		PageSize:   ProjectsPageSize,
		Matched:    len(matched),
		Total:      len(projects),
	}
}

// Paginate returns the 1-based page of items. Pages outside the range are clamped, and an empty
// list still has one (empty) page.
func Paginate[T any](items []T, page, size int) ([]T, int, int) {
	totalPages := (len(items) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	page = min(max(page, 1), totalPages)
	start := min((page-1)*size, len(items))
	end := min(start+size, len(items))
	return items[start:end], page, totalPages
}

// DistinctTags lists every tag used by projects, in first-seen order.
func DistinctTags(projects []*models.Project) []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, p := range projects {
		for _, tag := range p.TechStackTags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}
