package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pantheonhq/soulengine/internal/services/player"
)

// NewRouter constructs the router with all engine endpoints registered.
func NewRouter(svc *player.Service) http.Handler {
	h := NewHandler(svc)
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/players", h.CreatePlayerHandler)

	r.Route("/players/{playerID}", func(r chi.Router) {
		r.Get("/", h.GetPlayerHandler)
		r.Post("/wager", h.WagerHandler)
		r.Post("/credit", h.CreditHandler)
		r.Post("/rounds", h.PlayRoundHandler)
		r.Post("/cult", h.JoinCultHandler)
		r.Post("/boons", h.ApplyBoonHandler)
		r.Get("/boons/{kind}", h.BoonPotencyHandler)
		r.Post("/quests/{questID}/claim", h.ClaimQuestHandler)
		r.Post("/blessing/claim", h.ClaimBlessingHandler)
		r.Post("/clash", h.ClashHandler)
		r.Post("/flush", h.FlushHandler)
	})

	return r
}
