package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *database.SkillRepo
}

func newSkillHandler(skillRepo *database.SkillRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
	}
}

type skillPayload struct {
	Name              *string `json:"name"`
	Category          *string `json:"category"`
	Icon              *string `json:"icon"`
	YearsOfExperience *int    `json:"yearsOfExperience"`
}

func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find skills", "skills", err))
			return
		}

		h.responder.WriteJSON(w, mapViews(skills, newSkillView))
	}
}

func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload skillPayload
		if err := decodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var required requiredFields
		required.check("name", payload.Name)
		if err := required.err(); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := checkEnum("category", payload.Category, models.SkillCategories); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill := models.Skill{
			Name:              *payload.Name,
			Category:          valueOr(payload.Category, "other"),
			Icon:              payload.Icon,
			YearsOfExperience: valueOr(payload.YearsOfExperience, 1),
		}
		if err := h.skillRepo.Add(r.Context(), &skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create skill", "skill", err))
			return
		}

		h.responder.WriteCreated(w, newSkillView(&skill))
	}
}

func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "skill")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, err := h.skillRepo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find skill", "skill", err))
			return
		}

		var payload skillPayload
		if err := decodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := checkEnum("category", payload.Category, models.SkillCategories); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		assign(&skill.Name, payload.Name)
		assign(&skill.Category, payload.Category)
		assignOptional(&skill.Icon, payload.Icon)
		assign(&skill.YearsOfExperience, payload.YearsOfExperience)

		if err := h.skillRepo.Update(r.Context(), skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update skill", "skill", err))
			return
		}

		h.responder.WriteJSON(w, newSkillView(skill))
	}
}

func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "skill")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.skillRepo.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete skill", "skill", err))
			return
		}

		h.responder.WriteSuccess(w)
	}
}
