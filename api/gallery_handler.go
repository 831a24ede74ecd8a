package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type galleryHandler struct {
	responder   Responder
	logger      zerolog.Logger
	galleryRepo *database.GalleryRepo
}

func newGalleryHandler(galleryRepo *database.GalleryRepo) galleryHandler {
	logger := log.With().Str("handlerName", "galleryHandler").Logger()

	return galleryHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		galleryRepo: galleryRepo,
	}
}

type galleryPayload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	SortOrder   *int    `json:"sortOrder"`
	IsFeatured  *bool   `json:"isFeatured"`
}

// getAllGalleries lists featured items first, then by sort order.
func (h galleryHandler) getAllGalleries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		galleries, err := h.galleryRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find galleries", "galleries", err))
			return
		}

		h.responder.WriteJSON(w, mapViews(galleries, newGalleryView))
	}
}

func (h galleryHandler) createGallery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload galleryPayload
		if err := decodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var required requiredFields
		required.check("title", payload.Title)
		required.check("imageUrl", payload.ImageURL)
		if err := required.err(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		gallery := models.Gallery{
			Title:       *payload.Title,
			Description: payload.Description,
			ImageURL:    *payload.ImageURL,
			SortOrder:   valueOr(payload.SortOrder, 0),
			IsFeatured:  models.Flag(valueOr(payload.IsFeatured, false)),
		}
		if err := h.galleryRepo.Add(r.Context(), &gallery); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create gallery", "gallery", err))
			return
		}

		h.responder.WriteCreated(w, newGalleryView(&gallery))
	}
}

func (h galleryHandler) updateGallery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "gallery")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		gallery, err := h.galleryRepo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find gallery", "gallery", err))
			return
		}

		var payload galleryPayload
		if err := decodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		assign(&gallery.Title, payload.Title)
		assignOptional(&gallery.Description, payload.Description)
		assign(&gallery.ImageURL, payload.ImageURL)
		assign(&gallery.SortOrder, payload.SortOrder)
		if payload.IsFeatured != nil {
			gallery.IsFeatured = models.Flag(*payload.IsFeatured)
		}

		if err := h.galleryRepo.Update(r.Context(), gallery); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update gallery", "gallery", err))
			return
		}

		h.responder.WriteJSON(w, newGalleryView(gallery))
	}
}

func (h galleryHandler) deleteGallery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "gallery")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.galleryRepo.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete gallery", "gallery", err))
			return
		}

		h.responder.WriteSuccess(w)
	}
}
