package api

import (
	"errors"
	"net/http"

	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploader  *services.Uploader
	maxBytes  int64
}

func newUploadHandler(uploader *services.Uploader, maxBytes int64) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		uploader:  uploader,
		maxBytes:  maxBytes,
	}
}

// upload stores the multipart "file" field and returns its public URL.
func (h uploadHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
		if err := r.ParseMultipartForm(h.maxBytes); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				h.responder.WriteError(w, errs.NewInvalidFieldError("file", "exceeds the upload size limit"))
				return
			}
			badRequest := errs.NewBadRequestError("expected a multipart form")
			badRequest.Cause = err
			h.responder.WriteError(w, badRequest)
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		result, err := h.uploader.Upload(r.Context(), header.Filename, contentType, header.Size, file)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("key", result.Key).Int64("size", header.Size).Msg("file uploaded")
		h.responder.WriteCreated(w, result)
	}
}
