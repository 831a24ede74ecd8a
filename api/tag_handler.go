package api

import (
	"net/http"
	"strings"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type tagHandler struct {
	responder Responder
	logger    zerolog.Logger
	tagRepo   *database.TagRepo
}

func newTagHandler(tagRepo *database.TagRepo) tagHandler {
	logger := log.With().Str("handlerName", "tagHandler").Logger()

	return tagHandler{
		responder: NewResponder(logger),
		logger:    logger,
		tagRepo:   tagRepo,
	}
}

type tagPayload struct {
	Name string `json:"name"`
}

func (p tagPayload) name() (string, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return "", errs.NewMissingRequiredFieldError("name")
	}
	return name, nil
}

func (h tagHandler) getAllTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.tagRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tags", "tags", err))
			return
		}

		h.responder.WriteJSON(w, mapViews(tags, newTagView))
	}
}

// createTag is a plain insert: an existing name is a 409.
func (h tagHandler) createTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload tagPayload
		if err := decodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		name, err := payload.name()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tag := models.Tag{Name: name}
		if err := h.tagRepo.Add(r.Context(), &tag); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create tag", "tag", err))
			return
		}

		h.responder.WriteCreated(w, newTagView(&tag))
	}
}

// updateTag renames the tag and every project or experience link using it.
func (h tagHandler) updateTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "tag")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tag, err := h.tagRepo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tag", "tag", err))
			return
		}

		var payload tagPayload
		if err := decodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		name, err := payload.name()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.tagRepo.Rename(r.Context(), tag, name); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("rename tag", "tag", err))
			return
		}

		h.responder.WriteJSON(w, newTagView(tag))
	}
}

func (h tagHandler) deleteTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "tag")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tag, err := h.tagRepo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tag", "tag", err))
			return
		}

		if err := h.tagRepo.Delete(r.Context(), tag); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete tag", "tag", err))
			return
		}

		h.responder.WriteSuccess(w)
	}
}
