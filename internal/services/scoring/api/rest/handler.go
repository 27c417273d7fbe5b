// Package rest exposes the scoring service as a JSON HTTP API.
package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/mrsnaggls2/binokel/internal/platform/errors"
	"github.com/mrsnaggls2/binokel/internal/platform/i18n"
	"github.com/mrsnaggls2/binokel/internal/services/scoring/domain/game"
	"github.com/mrsnaggls2/binokel/internal/services/scoring/service"
	"golang.org/x/text/language"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Handler serves the scoring JSON API.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs the API handler over the scoring service.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the API routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/games", h.createGame)
	mux.HandleFunc("GET /api/games", h.listGames)
	mux.HandleFunc("GET /api/games/{gameID}", h.getGame)
	mux.HandleFunc("DELETE /api/games/{gameID}", h.deleteGame)
	mux.HandleFunc("POST /api/games/{gameID}/rounds/{roundNumber}", h.recordRound)
	mux.HandleFunc("GET /healthz", h.health)
}

type createGameRequest struct {
	Players []string `json:"players"`
	Dealer  int      `json:"dealer"`
}

type gamePayload struct {
	ID         string   `json:"id"`
	Players    []string `json:"players"`
	TeamName1  string   `json:"team_name1"`
	TeamName2  string   `json:"team_name2"`
	CreatedAt  string   `json:"created_at"`
	Finished   bool     `json:"finished"`
	Winner     string   `json:"winner,omitempty"`
	EndPoints1 *int     `json:"end_points1,omitempty"`
	EndPoints2 *int     `json:"end_points2,omitempty"`
}

type roundPayload struct {
	Number       int    `json:"number"`
	Dealer       int    `json:"dealer"`
	Resolved     bool   `json:"resolved"`
	Bid          *int   `json:"bid,omitempty"`
	BidTeam      string `json:"bid_team,omitempty"`
	Meld1        int    `json:"meld1"`
	Meld2        int    `json:"meld2"`
	Play1        int    `json:"play1"`
	Play2        int    `json:"play2"`
	Confirmation string `json:"confirmation"`
	Result1      int    `json:"result1"`
	Result2      int    `json:"result2"`
	Total1       int    `json:"total1"`
	Total2       int    `json:"total2"`
}

type recordRoundRequest struct {
	Mode    string `json:"mode"`
	Bid     int    `json:"bid"`
	BidTeam string `json:"bid_team"`
	Meld1   int    `json:"meld1"`
	Meld2   int    `json:"meld2"`
	Play1   int    `json:"play1"`
	Play2   int    `json:"play2"`
}

type recordRoundResponse struct {
	Confirmation string `json:"confirmation,omitempty"`
	Result1      int    `json:"result1"`
	Result2      int    `json:"result2"`
	Total1       int    `json:"total1"`
	Total2       int    `json:"total2"`
	Finished     bool   `json:"finished"`
	Winner       string `json:"winner,omitempty"`
	EndPoints1   int    `json:"end_points1"`
	EndPoints2   int    `json:"end_points2"`
}

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *Handler) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, r, "request body is not valid JSON")
		return
	}
	if len(req.Players) != game.PlayerCount {
		h.writeBadRequest(w, r, "exactly four players are required")
		return
	}

	var players [game.PlayerCount]string
	copy(players[:], req.Players)
	created, err := h.svc.CreateGame(r.Context(), game.CreateGameInput{
		Players: players,
		Dealer:  req.Dealer,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, gameToPayload(created))
}

func (h *Handler) listGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.svc.ListGames(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	payload := make([]gamePayload, 0, len(games))
	for _, value := range games {
		payload = append(payload, gameToPayload(value))
	}
	writeJSON(w, http.StatusOK, map[string]any{"games": payload})
}

func (h *Handler) getGame(w http.ResponseWriter, r *http.Request) {
	got, rounds, err := h.svc.GetGame(r.Context(), r.PathValue("gameID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	roundPayloads := make([]roundPayload, 0, len(rounds))
	for _, round := range rounds {
		roundPayloads = append(roundPayloads, roundToPayload(round))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"game":   gameToPayload(got),
		"rounds": roundPayloads,
	})
}

func (h *Handler) recordRound(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(r.PathValue("roundNumber"))
	if err != nil {
		h.writeBadRequest(w, r, "round number must be an integer")
		return
	}

	var req recordRoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadRequest(w, r, "request body is not valid JSON")
		return
	}
	// Unknown labels settle as unset values; the domain rejects them with
	// the proper error codes.
	mode, _ := game.ParseMode(req.Mode)
	bidTeam, _ := game.ParseTeam(req.BidTeam)

	result, err := h.svc.RecordRound(r.Context(), service.RecordRoundInput{
		GameID:  r.PathValue("gameID"),
		Number:  number,
		Mode:    mode,
		Bid:     req.Bid,
		BidTeam: bidTeam,
		Meld1:   req.Meld1,
		Meld2:   req.Meld2,
		Play1:   req.Play1,
		Play2:   req.Play2,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := recordRoundResponse{
		Result1:    result.Result1,
		Result2:    result.Result2,
		Total1:     result.Total1,
		Total2:     result.Total2,
		Finished:   result.Finished,
		EndPoints1: result.EndPoints1,
		EndPoints2: result.EndPoints2,
	}
	if result.Finished {
		resp.Winner = result.Winner.String()
	}
	if result.Confirmation != game.ConfirmationPending {
		resp.Confirmation = result.Confirmation.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteGame(r.Context(), r.PathValue("gameID")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func gameToPayload(value game.Game) gamePayload {
	payload := gamePayload{
		ID:         value.ID,
		Players:    value.Players[:],
		TeamName1:  value.TeamName1,
		TeamName2:  value.TeamName2,
		CreatedAt:  value.CreatedAt.Format(time.RFC3339),
		Finished:   value.Finished(),
		EndPoints1: value.EndPoints1,
		EndPoints2: value.EndPoints2,
	}
	if value.Finished() {
		payload.Winner = value.Winner.String()
	}
	return payload
}

func roundToPayload(round game.Round) roundPayload {
	payload := roundPayload{
		Number:       round.Number,
		Dealer:       round.Dealer,
		Resolved:     round.Resolved(),
		Meld1:        round.Meld1,
		Meld2:        round.Meld2,
		Play1:        round.Play1,
		Play2:        round.Play2,
		Confirmation: round.Confirmation.String(),
		Result1:      round.Result1,
		Result2:      round.Result2,
		Total1:       round.Total1,
		Total2:       round.Total2,
	}
	if round.Resolved() {
		bid := round.Bid
		payload.Bid = &bid
		payload.BidTeam = round.BidTeam.String()
	}
	return payload
}

// requestLocale resolves the response locale from the lang query parameter,
// falling back to Accept-Language.
func requestLocale(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		if tag, ok := i18n.ParseTag(lang); ok {
			return i18n.Locale(tag)
		}
	}
	if header := r.Header.Get("Accept-Language"); header != "" {
		if preferred, _, err := language.ParseAcceptLanguage(header); err == nil {
			return i18n.Locale(i18n.MatchTags(preferred))
		}
	}
	return i18n.Locale(i18n.DefaultTag())
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	h.writeError(w, r, apperrors.New(apperrors.CodeBadRequest, message))
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	st, ok := status.FromError(apperrors.HandleError(err, requestLocale(r)))
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorPayload{
			Code:    string(apperrors.CodeUnknown),
			Message: "an unexpected error occurred",
		})
		return
	}

	payload := errorPayload{
		Code:    string(apperrors.CodeUnknown),
		Message: st.Message(),
	}
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			payload.Code = d.GetReason()
		case *errdetails.LocalizedMessage:
			payload.Message = d.GetMessage()
		}
	}
	writeJSON(w, httpStatus(st.Code()), payload)
}

func httpStatus(code codes.Code) int {
	switch code {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists, codes.FailedPrecondition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	_ = encoder.Encode(payload)
}
