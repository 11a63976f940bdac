package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aargomedo/astracore-backend/errs"
	"github.com/aargomedo/astracore-backend/models"
	"github.com/aargomedo/astracore-backend/registry"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	registry  *registry.Registry
}

func newProjectHandler(reg *registry.Registry) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		registry:  reg,
	}
}

// TagView pairs a tag with its resolved display icon.
type TagView struct {
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

// ProjectView is a registry entry rendered for a card: tags carry their
// icons and the detail text has its fallback applied.
type ProjectView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Details     string    `json:"details"`
	Tags        []TagView `json:"tags"`
	Images      []string  `json:"images,omitempty"`
}

// ProjectCollection represents all registry projects
type ProjectCollection struct {
	Projects []ProjectView `json:"projects"`
	Total    int           `json:"total"`
}

func toProjectView(p models.Project) ProjectView {
	tags := make([]TagView, 0, len(p.Tags))
	for _, tag := range p.Tags {
		tags = append(tags, TagView{Value: tag, Icon: registry.IconForTag(tag)})
	}

	return ProjectView{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Details:     p.DetailText(),
		Tags:        tags,
		Images:      p.Images,
	}
}

// getAllProjects retrieves every registry project in insertion order.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects := h.registry.All()

		views := make([]ProjectView, 0, len(projects))
		for _, project := range projects {
			views = append(views, toProjectView(project))
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: views,
			Total:    len(views),
		})
	}
}

// updateProject replaces one project wholesale, matched by ID. An
// unknown ID is a no-op reported as updated=false, not an error.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}
		project.ID = projectID

		updated, err := h.registry.Update(project)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":  "success",
			"updated": updated,
		})
	}
}
