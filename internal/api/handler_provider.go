package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pantheonhq/soulengine/internal/engine"
	"github.com/pantheonhq/soulengine/internal/services/player"
)

// HandlerProvider wraps the player service and exposes HTTP handlers.
type HandlerProvider struct {
	svc *player.Service
}

// NewHandler returns a new handler provider.
func NewHandler(svc *player.Service) *HandlerProvider {
	return &HandlerProvider{svc: svc}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps domain errors to HTTP statuses. Everything the
// engine rejects is locally recoverable: either the caller's fault
// (400), a missing player (404) or a state conflict (409).
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, player.ErrPlayerNotFound):
		writeError(w, http.StatusNotFound, "player not found")
	case errors.Is(err, engine.ErrInsufficientFunds):
		writeError(w, http.StatusConflict, "insufficient funds")
	case errors.Is(err, engine.ErrUnknownGod):
		writeError(w, http.StatusBadRequest, "unknown god")
	case errors.Is(err, player.ErrUnknownBoonKind):
		writeError(w, http.StatusBadRequest, "unknown boon kind")
	case errors.Is(err, engine.ErrInvalidAmount),
		errors.Is(err, engine.ErrInvalidBoon),
		errors.Is(err, engine.ErrInvalidStance):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("internal error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func playerID(r *http.Request) string {
	return chi.URLParam(r, "playerID")
}

// decodeBody reads a JSON request body strictly: size-capped, unknown
// fields rejected.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		if errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "empty body")
			return false
		}

		writeError(w, http.StatusBadRequest, "invalid JSON")

		return false
	}

	return true
}

// --- Handlers ---

// CreatePlayerHandler handles POST /players.
func (h *HandlerProvider) CreatePlayerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := h.svc.CreatePlayer(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// GetPlayerHandler handles GET /players/{playerID}.
func (h *HandlerProvider) GetPlayerHandler(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.View(r.Context(), playerID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

type amountRequest struct {
	Amount int64 `json:"amount"`
}

// WagerHandler handles POST /players/{playerID}/wager.
func (h *HandlerProvider) WagerHandler(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.svc.Wager(r.Context(), playerID(r), req.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreditHandler handles POST /players/{playerID}/credit.
func (h *HandlerProvider) CreditHandler(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.svc.Credit(r.Context(), playerID(r), req.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type roundRequest struct {
	GodID string `json:"godId"`
	Wager int64  `json:"wager"`
}

// PlayRoundHandler handles POST /players/{playerID}/rounds.
func (h *HandlerProvider) PlayRoundHandler(w http.ResponseWriter, r *http.Request) {
	var req roundRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.svc.PlayRound(r.Context(), playerID(r), engine.GodID(req.GodID), req.Wager)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

type cultRequest struct {
	GodID string `json:"godId"`
}

// JoinCultHandler handles POST /players/{playerID}/cult.
func (h *HandlerProvider) JoinCultHandler(w http.ResponseWriter, r *http.Request) {
	var req cultRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.svc.JoinCult(r.Context(), playerID(r), engine.GodID(req.GodID))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type boonRequest struct {
	Kind     string  `json:"kind"`
	Duration int     `json:"duration"`
	Potency  float64 `json:"potency"`
}

// ApplyBoonHandler handles POST /players/{playerID}/boons.
func (h *HandlerProvider) ApplyBoonHandler(w http.ResponseWriter, r *http.Request) {
	var req boonRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.svc.ApplyBoon(r.Context(), playerID(r), engine.BoonKind(req.Kind), req.Duration, req.Potency)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// BoonPotencyHandler handles GET /players/{playerID}/boons/{kind}.
func (h *HandlerProvider) BoonPotencyHandler(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	potency, err := h.svc.BoonPotency(r.Context(), playerID(r), engine.BoonKind(kind))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"kind": kind, "potency": potency})
}

// ClaimQuestHandler handles POST /players/{playerID}/quests/{questID}/claim.
func (h *HandlerProvider) ClaimQuestHandler(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ClaimQuest(r.Context(), playerID(r), chi.URLParam(r, "questID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	status := http.StatusOK

	switch res {
	case engine.ClaimQuestNotFound:
		status = http.StatusNotFound
	case engine.ClaimAlreadyDone, engine.ClaimIncomplete:
		status = http.StatusConflict
	case engine.ClaimOK:
	}

	writeJSON(w, status, map[string]engine.ClaimResult{"result": res})
}

// ClaimBlessingHandler handles POST /players/{playerID}/blessing/claim.
func (h *HandlerProvider) ClaimBlessingHandler(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ClaimBlessing(r.Context(), playerID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	status := http.StatusOK
	if out.Result == engine.BlessingAlreadyClaimed {
		status = http.StatusConflict
	}

	writeJSON(w, status, out)
}

type clashRequest struct {
	Stance         string `json:"stance"`
	OpponentStance string `json:"opponentStance,omitempty"`
	Wager          int64  `json:"wager"`
}

// ClashHandler handles POST /players/{playerID}/clash.
func (h *HandlerProvider) ClashHandler(w http.ResponseWriter, r *http.Request) {
	var req clashRequest
	if !decodeBody(w, r, &req) {
		return
	}

	stance, err := engine.ParseStance(req.Stance)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var opponent *engine.Stance

	if req.OpponentStance != "" {
		opp, err := engine.ParseStance(req.OpponentStance)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		opponent = &opp
	}

	res, err := h.svc.Clash(r.Context(), playerID(r), stance, opponent, req.Wager)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// FlushHandler handles POST /players/{playerID}/flush.
func (h *HandlerProvider) FlushHandler(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Flush(r.Context(), playerID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
