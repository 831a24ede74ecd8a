package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
}

func newProfileHandler(profileRepo *database.ProfileRepo) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
	}
}

type profilePayload struct {
	Name        *string     `json:"name"`
	Tagline     *string     `json:"tagline"`
	Bio         *string     `json:"bio"`
	Email       *string     `json:"email"`
	Phone       *string     `json:"phone"`
	Location    *string     `json:"location"`
	AvatarURL   *string     `json:"avatarUrl"`
	ResumeURL   *string     `json:"resumeUrl"`
	SocialLinks socialLinks `json:"socialLinks"`
}

func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.Get(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}

		h.responder.WriteJSON(w, newProfileView(profile))
	}
}

// updateProfile replaces the whole profile. Optional fields left out of the
// body are cleared.
func (h profileHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload profilePayload
		if err := decodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var required requiredFields
		required.check("name", payload.Name)
		required.check("tagline", payload.Tagline)
		required.check("bio", payload.Bio)
		required.check("email", payload.Email)
		required.check("location", payload.Location)
		if err := required.err(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		profile := models.Profile{
			Name:        *payload.Name,
			Tagline:     *payload.Tagline,
			Bio:         *payload.Bio,
			Email:       *payload.Email,
			Phone:       payload.Phone,
			Location:    *payload.Location,
			AvatarURL:   payload.AvatarURL,
			ResumeURL:   payload.ResumeURL,
			GithubURL:   payload.SocialLinks.Github,
			LinkedinURL: payload.SocialLinks.Linkedin,
			TwitterURL:  payload.SocialLinks.Twitter,
			WebsiteURL:  payload.SocialLinks.Website,
		}
		if err := h.profileRepo.Save(r.Context(), &profile); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("save profile", "profile", err))
			return
		}

		h.logger.Info().Msg("profile updated")
		h.responder.WriteJSON(w, newProfileView(&profile))
	}
}
