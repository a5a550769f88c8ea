package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/cuescore-backend/internal/apperror"
	"github.com/rocketscienceinc/cuescore-backend/internal/engine"
	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
	"github.com/rocketscienceinc/cuescore-backend/internal/repository"
	"github.com/rocketscienceinc/cuescore-backend/internal/usecase"
)

const maxBodyBytes = 1 << 20

type gameUseCase interface {
	StartGame(ctx context.Context, params usecase.StartParams) (entity.Game, error)
	GetGame(ctx context.Context, id string) (entity.Game, error)
	Execute(ctx context.Context, id string, cmd usecase.Command) (entity.Game, error)
	CheckAllBallsPocketed(ctx context.Context, id string) (bool, error)
	CheckVictory(ctx context.Context, id string) (engine.Victory, error)
	EndGame(ctx context.Context, id, winnerID string) (entity.Game, error)
	Rematch(ctx context.Context, id string) (entity.Game, error)
	Stats(ctx context.Context) ([]entity.PlayerStats, error)
	History(ctx context.Context) ([]entity.Game, error)
}

type Handlers struct {
	logger *slog.Logger
	uGame  gameUseCase
}

type endGameRequest struct {
	WinnerID string `json:"winnerId,omitempty"`
}

type allPocketedResponse struct {
	AllPocketed bool `json:"allPocketed"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewHandlers(logger *slog.Logger, uGame gameUseCase) *Handlers {
	return &Handlers{
		logger: logger.With("component", "rest"),
		uGame:  uGame,
	}
}

func (that *Handlers) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", that.Ping)
	mux.HandleFunc("POST /games", that.StartGame)
	mux.HandleFunc("GET /games/{id}", that.GetGame)
	mux.HandleFunc("POST /games/{id}/actions", that.Execute)
	mux.HandleFunc("GET /games/{id}/all-pocketed", that.CheckAllBallsPocketed)
	mux.HandleFunc("GET /games/{id}/victory", that.CheckVictory)
	mux.HandleFunc("POST /games/{id}/end", that.EndGame)
	mux.HandleFunc("POST /games/{id}/rematch", that.Rematch)
	mux.HandleFunc("GET /stats", that.Stats)
	mux.HandleFunc("GET /history", that.History)

	return mux
}

func (that *Handlers) StartGame(w http.ResponseWriter, r *http.Request) {
	var params usecase.StartParams
	if !that.decode(w, r, &params) {
		return
	}

	game, err := that.uGame.StartGame(r.Context(), params)
	if err != nil {
		that.writeError(w, "StartGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *Handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "GetGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Handlers) Execute(w http.ResponseWriter, r *http.Request) {
	var cmd usecase.Command
	if !that.decode(w, r, &cmd) {
		return
	}

	game, err := that.uGame.Execute(r.Context(), r.PathValue("id"), cmd)
	if err != nil {
		that.writeError(w, "Execute", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Handlers) CheckAllBallsPocketed(w http.ResponseWriter, r *http.Request) {
	allPocketed, err := that.uGame.CheckAllBallsPocketed(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "CheckAllBallsPocketed", err)
		return
	}

	that.writeJSON(w, http.StatusOK, allPocketedResponse{AllPocketed: allPocketed})
}

func (that *Handlers) CheckVictory(w http.ResponseWriter, r *http.Request) {
	victory, err := that.uGame.CheckVictory(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "CheckVictory", err)
		return
	}

	that.writeJSON(w, http.StatusOK, victory)
}

func (that *Handlers) EndGame(w http.ResponseWriter, r *http.Request) {
	// the body is optional
	var req endGameRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	game, err := that.uGame.EndGame(r.Context(), r.PathValue("id"), req.WinnerID)
	if err != nil {
		that.writeError(w, "EndGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Handlers) Rematch(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.Rematch(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "Rematch", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := that.uGame.Stats(r.Context())
	if err != nil {
		that.writeError(w, "Stats", err)
		return
	}

	that.writeJSON(w, http.StatusOK, stats)
}

func (that *Handlers) History(w http.ResponseWriter, r *http.Request) {
	games, err := that.uGame.History(r.Context())
	if err != nil {
		that.writeError(w, "History", err)
		return
	}

	that.writeJSON(w, http.StatusOK, games)
}

func (that *Handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
		return false
	}

	return true
}

func (that *Handlers) writeError(w http.ResponseWriter, method string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeJSON(w, status, errorResponse{Error: http.StatusText(status)})
		return
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *Handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	case usecase.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
