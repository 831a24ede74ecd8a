package api

import (
	"net/http"
	"time"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type overviewHandler struct {
	responder    Responder
	logger       zerolog.Logger
	overviewRepo *database.OverviewRepo
	startupTime  time.Time
}

func newOverviewHandler(overviewRepo *database.OverviewRepo, startupTime time.Time) overviewHandler {
	logger := log.With().Str("handlerName", "overviewHandler").Logger()

	return overviewHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		overviewRepo: overviewRepo,
		startupTime:  startupTime,
	}
}

type healthResponse struct {
	OK        bool      `json:"ok"`
	StartedAt time.Time `json:"startedAt"`
}

func (h overviewHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, healthResponse{OK: true, StartedAt: h.startupTime.UTC()})
	}
}

func (h overviewHandler) getOverview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := h.overviewRepo.Counts(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count content", "overview", err))
			return
		}

		h.responder.WriteJSON(w, newOverviewView(overview))
	}
}
