package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type experienceHandler struct {
	responder      Responder
	logger         zerolog.Logger
	experienceRepo *database.ExperienceRepo
}

func newExperienceHandler(experienceRepo *database.ExperienceRepo) experienceHandler {
	logger := log.With().Str("handlerName", "experienceHandler").Logger()

	return experienceHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		experienceRepo: experienceRepo,
	}
}

type experiencePayload struct {
	Company      *string   `json:"company"`
	Position     *string   `json:"position"`
	Location     *string   `json:"location"`
	Type         *string   `json:"type"`
	StartDate    *string   `json:"startDate"`
	EndDate      *string   `json:"endDate"`
	Description  *string   `json:"description"`
	Achievements *[]string `json:"achievements"`
	Technologies *[]string `json:"technologies"`
}

func (h experienceHandler) getAllExperiences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experiences, err := h.experienceRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find experiences", "experiences", err))
			return
		}

		h.responder.WriteJSON(w, mapViews(experiences, newExperienceView))
	}
}

func (h experienceHandler) createExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload experiencePayload
		if err := decodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var required requiredFields
		required.check("company", payload.Company)
		required.check("position", payload.Position)
		required.check("location", payload.Location)
		required.check("startDate", payload.StartDate)
		required.check("description", payload.Description)
		if err := required.err(); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := checkEnum("type", payload.Type, models.ExperienceTypes); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		experience := models.Experience{
			Company:      *payload.Company,
			Position:     *payload.Position,
			Location:     *payload.Location,
			Type:         valueOr(payload.Type, "full-time"),
			StartDate:    *payload.StartDate,
			EndDate:      payload.EndDate,
			Description:  *payload.Description,
			Achievements: models.NewStringList(valueOr(payload.Achievements, nil)),
		}

		if err := h.experienceRepo.Add(r.Context(), &experience, valueOr(payload.Technologies, nil)); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create experience", "experience", err))
			return
		}

		h.responder.WriteCreated(w, newExperienceView(&experience))
	}
}

func (h experienceHandler) updateExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "experience")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		experience, err := h.experienceRepo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find experience", "experience", err))
			return
		}

		var payload experiencePayload
		if err := decodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := checkEnum("type", payload.Type, models.ExperienceTypes); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		assign(&experience.Company, payload.Company)
		assign(&experience.Position, payload.Position)
		assign(&experience.Location, payload.Location)
		assign(&experience.Type, payload.Type)
		assign(&experience.StartDate, payload.StartDate)
		assignOptional(&experience.EndDate, payload.EndDate)
		assign(&experience.Description, payload.Description)
		if payload.Achievements != nil {
			experience.Achievements = models.NewStringList(*payload.Achievements)
		}

		if err := h.experienceRepo.Update(r.Context(), experience, payload.Technologies); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update experience", "experience", err))
			return
		}

		h.responder.WriteJSON(w, newExperienceView(experience))
	}
}

func (h experienceHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "experience")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.experienceRepo.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete experience", "experience", err))
			return
		}

		h.responder.WriteSuccess(w)
	}
}
