package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/portfolio-site/backend/errs"
	"github.com/portfolio-site/backend/models"
)

// ProjectStore is the persistence surface the project handler needs.
// *database.ProjectRepo satisfies it.
type ProjectStore interface {
	FindAll() ([]*models.Project, error)
	FindByID(id int) (*models.Project, error)
	Add(project *models.Project) error
	Update(project *models.Project) error
	Delete(id int) error
}

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo ProjectStore
}

func newProjectHandler(projectRepo ProjectStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// parseProjectID extracts and parses the {projectID} route parameter.
func parseProjectID(r *http.Request) (int, error) {
	projectIDStr := chi.URLParam(r, "projectID")
	if projectIDStr == "" {
		return 0, errs.NewBadRequestError("missing projectID")
	}

	projectID, err := strconv.Atoi(projectIDStr)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid projectID")
	}
	return projectID, nil
}

// decodeProject decodes and validates a full seven-field project payload.
// Create and update share this: both are full replacements, never patches.
func (h projectHandler) decodeProject(r *http.Request) (*models.Project, error) {
	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode project request body")
		return nil, errs.NewInvalidJSONError(err)
	}

	if field := project.MissingField(); field != "" {
		return nil, errs.NewMissingRequiredFieldError("All fields are required", field)
	}

	return &project, nil
}

// getAllProjects returns every project, newest first
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		// Never serialize a nil slice as null
		if projects == nil {
			projects = []*models.Project{}
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProject returns a single project by id. A missing row is a 404, distinct
// from a store failure.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if errs.IsNotFound(err) {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject inserts a new project; the store assigns the id
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := h.decodeProject(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// The id is always store-assigned, never client-supplied
		project.ID = 0

		if err := h.projectRepo.Add(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, project)
	}
}

// updateProject fully replaces all seven fields of an existing project
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.projectRepo.FindByID(projectID); errs.IsNotFound(err) {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		} else if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		project, err := h.decodeProject(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project.ID = projectID

		if err := h.projectRepo.Update(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject removes a project by id. Deleting an id that no longer
// exists still confirms success.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Project deleted",
		})
	}
}
