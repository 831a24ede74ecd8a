package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

type projectPayload struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	LongDescription *string   `json:"longDescription"`
	ImageURLs       *[]string `json:"imageUrls"`
	DemoURL         *string   `json:"demoUrl"`
	GithubURL       *string   `json:"githubUrl"`
	Category        *string   `json:"category"`
	Featured        *bool     `json:"featured"`
	Status          *string   `json:"status"`
	StartDate       *string   `json:"startDate"`
	EndDate         *string   `json:"endDate"`
	Tags            *[]string `json:"tags"`
}

func (p projectPayload) validateEnums() error {
	if err := checkEnum("category", p.Category, models.ProjectCategories); err != nil {
		return err
	}
	return checkEnum("status", p.Status, models.ProjectStatuses)
}

// getAllProjects lists projects, most recently updated first.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, mapViews(projects, newProjectView))
	}
}

func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "project")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		h.responder.WriteJSON(w, newProjectView(project))
	}
}

// createProject rejects more than three images; empty entries are dropped first.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload projectPayload
		if err := decodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var required requiredFields
		required.check("title", payload.Title)
		required.check("description", payload.Description)
		required.check("startDate", payload.StartDate)
		if err := required.err(); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := payload.validateEnums(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		images := models.CompactStrings(valueOr(payload.ImageURLs, nil))
		if len(images) > models.MaxProjectImages {
			h.responder.WriteError(w, errs.NewTooManyItemsError("imageUrls", models.MaxProjectImages))
			return
		}

		project := models.Project{
			Title:           *payload.Title,
			Description:     *payload.Description,
			LongDescription: payload.LongDescription,
			DemoURL:         payload.DemoURL,
			GithubURL:       payload.GithubURL,
			Category:        valueOr(payload.Category, "web"),
			Featured:        models.Flag(valueOr(payload.Featured, false)),
			Status:          valueOr(payload.Status, "in-progress"),
			StartDate:       *payload.StartDate,
			EndDate:         payload.EndDate,
		}
		project.SetImages(images)

		if err := h.projectRepo.Add(r.Context(), &project, valueOr(payload.Tags, nil)); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		h.logger.Info().Uint("projectID", project.ID).Msg("project created")
		h.responder.WriteCreated(w, newProjectView(&project))
	}
}

// updateProject applies only the fields present in the body. Images beyond
// the third are silently dropped; tags are rewritten only when supplied.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "project")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		var payload projectPayload
		if err := decodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := payload.validateEnums(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		assign(&project.Title, payload.Title)
		assign(&project.Description, payload.Description)
		assignOptional(&project.LongDescription, payload.LongDescription)
		assignOptional(&project.DemoURL, payload.DemoURL)
		assignOptional(&project.GithubURL, payload.GithubURL)
		assign(&project.Category, payload.Category)
		assign(&project.Status, payload.Status)
		assign(&project.StartDate, payload.StartDate)
		assignOptional(&project.EndDate, payload.EndDate)
		if payload.Featured != nil {
			project.Featured = models.Flag(*payload.Featured)
		}

		images := project.Images()
		if payload.ImageURLs != nil {
			images = models.CompactStrings(*payload.ImageURLs)
		}
		if len(images) > models.MaxProjectImages {
			images = images[:models.MaxProjectImages]
		}
		project.SetImages(images)

		if err := h.projectRepo.Update(r.Context(), project, payload.Tags); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		h.responder.WriteJSON(w, newProjectView(project))
	}
}

func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "project")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.logger.Info().Uint("projectID", id).Msg("project deleted")
		h.responder.WriteSuccess(w)
	}
}
