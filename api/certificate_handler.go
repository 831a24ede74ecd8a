package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type certificateHandler struct {
	responder       Responder
	logger          zerolog.Logger
	certificateRepo *database.CertificateRepo
}

func newCertificateHandler(certificateRepo *database.CertificateRepo) certificateHandler {
	logger := log.With().Str("handlerName", "certificateHandler").Logger()

	return certificateHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		certificateRepo: certificateRepo,
	}
}

type certificatePayload struct {
	Title         *string `json:"title"`
	Issuer        *string `json:"issuer"`
	IssueDate     *string `json:"issueDate"`
	CredentialURL *string `json:"credentialUrl"`
	ImageURL      *string `json:"imageUrl"`
	Description   *string `json:"description"`
}

func (h certificateHandler) getAllCertificates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificates, err := h.certificateRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find certificates", "certificates", err))
			return
		}

		h.responder.WriteJSON(w, mapViews(certificates, newCertificateView))
	}
}

func (h certificateHandler) createCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload certificatePayload
		if err := decodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var required requiredFields
		required.check("title", payload.Title)
		required.check("issuer", payload.Issuer)
		required.check("issueDate", payload.IssueDate)
		if err := required.err(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		certificate := models.Certificate{
			Title:         *payload.Title,
			Issuer:        *payload.Issuer,
			IssueDate:     *payload.IssueDate,
			CredentialURL: payload.CredentialURL,
			ImageURL:      payload.ImageURL,
			Description:   payload.Description,
		}
		if err := h.certificateRepo.Add(r.Context(), &certificate); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create certificate", "certificate", err))
			return
		}

		h.responder.WriteCreated(w, newCertificateView(&certificate))
	}
}

func (h certificateHandler) updateCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "certificate")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		certificate, err := h.certificateRepo.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find certificate", "certificate", err))
			return
		}

		var payload certificatePayload
		if err := decodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		assign(&certificate.Title, payload.Title)
		assign(&certificate.Issuer, payload.Issuer)
		assign(&certificate.IssueDate, payload.IssueDate)
		assignOptional(&certificate.CredentialURL, payload.CredentialURL)
		assignOptional(&certificate.ImageURL, payload.ImageURL)
		assignOptional(&certificate.Description, payload.Description)

		if err := h.certificateRepo.Update(r.Context(), certificate); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update certificate", "certificate", err))
			return
		}

		h.responder.WriteJSON(w, newCertificateView(certificate))
	}
}

func (h certificateHandler) deleteCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "certificate")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.certificateRepo.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete certificate", "certificate", err))
			return
		}

		h.responder.WriteSuccess(w)
	}
}
