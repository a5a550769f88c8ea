package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/cuescore-backend/internal/apperror"
	"github.com/rocketscienceinc/cuescore-backend/internal/engine"
	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
)

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, game entity.Game) error
	GetByID(ctx context.Context, id string) (entity.Game, error)
}

type statsRepoDep interface {
	GetAll(ctx context.Context) ([]entity.PlayerStats, error)
	RecordResult(ctx context.Context, names []string, winnerName string) error
}

type historyRepoDep interface {
	Append(ctx context.Context, game entity.Game) error
	List(ctx context.Context) ([]entity.Game, error)
}

// publisherDep receives every snapshot the manager stores.
type publisherDep interface {
	Publish(game entity.Game)
}

// Defaults fill in player targets that a start request leaves out.
type Defaults struct {
	TargetSets  int
	TargetScore int
}

// StartParams describe a new game.
type StartParams struct {
	Type          entity.GameType            `json:"type"`
	Players       []entity.PlayerSetup       `json:"players"`
	ChessClock    *entity.ChessClockSettings `json:"chessClock,omitempty"`
	JapanSettings *entity.JapanSettings      `json:"japanSettings,omitempty"`
}

// GameManager is the session store. It keeps the current snapshot of every game in
// the game repository and replaces it after each action, one action per game at a time.
type GameManager struct {
	logger *slog.Logger

	gameRepo    gameRepoDep
	statsRepo   statsRepoDep
	historyRepo historyRepoDep
	publisher   publisherDep

	defaults Defaults
	now      func() time.Time
	locks    *keyedMutex
}

func NewGameManager(
	logger *slog.Logger,
	gameRepo gameRepoDep,
	statsRepo statsRepoDep,
	historyRepo historyRepoDep,
	publisher publisherDep,
	defaults Defaults,
) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game-manager"),

		gameRepo:    gameRepo,
		statsRepo:   statsRepo,
		historyRepo: historyRepo,
		publisher:   publisher,

		defaults: defaults,
		now:      time.Now,
		locks:    newKeyedMutex(),
	}
}

func (that *GameManager) StartGame(ctx context.Context, params StartParams) (entity.Game, error) {
	log := that.logger.With("method", "StartGame")

	if !params.Type.IsValid() {
		return entity.Game{}, fmt.Errorf("%w: unknown game type %q", apperror.ErrInvalidGameSetup, params.Type)
	}

	players, err := engine.For(params.Type).InitializePlayers(that.withDefaults(params.Type, params.Players))
	if err != nil {
		return entity.Game{}, fmt.Errorf("failed to initialize players: %w", err)
	}

	game := entity.Game{
		ID:           uuid.NewString(),
		Type:         params.Type,
		Status:       entity.StatusInProgress,
		Players:      players,
		StartTime:    that.now(),
		CurrentRack:  1,
		ShotHistory:  []entity.Shot{},
		ScoreHistory: []entity.ScoreHistoryEntry{},
	}

	if index := game.ActivePlayerIndex(); index >= 0 {
		game.CurrentPlayerIndex = index
	}

	if params.ChessClock != nil {
		clock := *params.ChessClock
		clock.IndividualTimes = append([]int(nil), params.ChessClock.IndividualTimes...)
		game.ChessClock = &clock
	}

	if params.Type == entity.GameTypeJapan {
		settings := japanSettings(params.JapanSettings)

		if settings.OrderChangeInterval < 0 {
			return entity.Game{}, fmt.Errorf("%w: negative order change interval", apperror.ErrInvalidGameSetup)
		}

		game.JapanSettings = &settings
		game.JapanRackHistory = []entity.JapanRackHistoryEntry{}
		game.JapanMultiplier = 1
	}

	if err = that.save(ctx, game); err != nil {
		return entity.Game{}, err
	}

	log.Info("game started", "game_id", game.ID, "type", game.Type, "players", len(game.Players))

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return entity.Game{}, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) PocketBall(ctx context.Context, id string, ballNumber int) (entity.Game, error) {
	return that.apply(ctx, id, "PocketBall", func(eng engine.Engine, game entity.Game) (entity.Game, error) {
		return eng.HandlePocketBall(game, ballNumber), nil
	})
}

func (that *GameManager) SwitchPlayer(ctx context.Context, id string) (entity.Game, error) {
	return that.apply(ctx, id, "SwitchPlayer", func(eng engine.Engine, game entity.Game) (entity.Game, error) {
		return eng.HandleSwitchPlayer(game), nil
	})
}

func (that *GameManager) SwitchToPlayer(ctx context.Context, id string, index int) (entity.Game, error) {
	return that.apply(ctx, id, "SwitchToPlayer", func(_ engine.Engine, game entity.Game) (entity.Game, error) {
		return engine.SwitchToPlayer(game, index), nil
	})
}

func (that *GameManager) UndoLastShot(ctx context.Context, id string) (entity.Game, error) {
	return that.apply(ctx, id, "UndoLastShot", func(eng engine.Engine, game entity.Game) (entity.Game, error) {
		return eng.HandleUndo(game), nil
	})
}

func (that *GameManager) WinSet(ctx context.Context, id, playerID string) (entity.Game, error) {
	return that.custom(ctx, id, engine.ActionWinSet, engine.ActionData{PlayerID: playerID})
}

func (that *GameManager) ResetRack(ctx context.Context, id string) (entity.Game, error) {
	return that.custom(ctx, id, engine.ActionResetRack, engine.ActionData{})
}

func (that *GameManager) AddPins(ctx context.Context, id string, pins int) (entity.Game, error) {
	return that.custom(ctx, id, engine.ActionAddPins, engine.ActionData{Pins: pins})
}

func (that *GameManager) UndoBowlingRoll(ctx context.Context, id string) (entity.Game, error) {
	return that.custom(ctx, id, engine.ActionUndoBowlingRoll, engine.ActionData{})
}

func (that *GameManager) JapanBallClick(ctx context.Context, id string, ballNumber int) (entity.Game, error) {
	return that.custom(ctx, id, engine.ActionJapanBallClick, engine.ActionData{Ball: ballNumber})
}

func (that *GameManager) ApplyMultiplier(ctx context.Context, id string, multiplier int) (entity.Game, error) {
	return that.custom(ctx, id, engine.ActionJapanMultiplier, engine.ActionData{Multiplier: multiplier})
}

func (that *GameManager) ApplyDeduction(ctx context.Context, id, playerID string, points int) (entity.Game, error) {
	return that.custom(ctx, id, engine.ActionJapanDeduction, engine.ActionData{PlayerID: playerID, Points: points})
}

func (that *GameManager) CompleteRack(ctx context.Context, id string) (entity.Game, error) {
	return that.custom(ctx, id, engine.ActionJapanRackDone, engine.ActionData{})
}

func (that *GameManager) ChangeOrder(ctx context.Context, id, playerID string) (entity.Game, error) {
	return that.custom(ctx, id, engine.ActionJapanOrderChange, engine.ActionData{PlayerID: playerID})
}

func (that *GameManager) CheckAllBallsPocketed(ctx context.Context, id string) (bool, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return false, err
	}

	return engine.AllBallsPocketed(game), nil
}

func (that *GameManager) CheckVictory(ctx context.Context, id string) (engine.Victory, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return engine.Victory{}, err
	}

	if game.IsCompleted() {
		return engine.Victory{IsGameOver: true, WinnerID: game.Winner}, nil
	}

	return engine.For(game.Type).CheckVictoryCondition(game), nil
}

// EndGame finishes a game by hand. An empty winnerID picks the player the rules
// favour: the one meeting the victory condition, otherwise the leader.
func (that *GameManager) EndGame(ctx context.Context, id, winnerID string) (entity.Game, error) {
	return that.apply(ctx, id, "EndGame", func(eng engine.Engine, game entity.Game) (entity.Game, error) {
		if winnerID == "" {
			if victory := eng.CheckVictoryCondition(game); victory.IsGameOver {
				winnerID = victory.WinnerID
			} else {
				winnerID = engine.DetermineWinner(game)
			}
		}

		if game.PlayerIndex(winnerID) < 0 {
			return game, fmt.Errorf("%w: %s", apperror.ErrPlayerNotFound, winnerID)
		}

		next := game.Clone()
		next.Status = entity.StatusCompleted
		next.Winner = winnerID

		return next, nil
	})
}

// Rematch starts a new game with the roster and settings of an existing one.
func (that *GameManager) Rematch(ctx context.Context, id string) (entity.Game, error) {
	previous, err := that.GetGame(ctx, id)
	if err != nil {
		return entity.Game{}, err
	}

	setups := make([]entity.PlayerSetup, len(previous.Players))
	for i, player := range previous.Players {
		setups[i] = player.Setup()
	}

	return that.StartGame(ctx, StartParams{
		Type:          previous.Type,
		Players:       setups,
		ChessClock:    previous.ChessClock,
		JapanSettings: previous.JapanSettings,
	})
}

func (that *GameManager) Stats(ctx context.Context) ([]entity.PlayerStats, error) {
	stats, err := that.statsRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}

func (that *GameManager) History(ctx context.Context) ([]entity.Game, error) {
	games, err := that.historyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	return games, nil
}

func (that *GameManager) custom(ctx context.Context, id string, action engine.Action, data engine.ActionData) (entity.Game, error) {
	return that.apply(ctx, id, string(action), func(eng engine.Engine, game entity.Game) (entity.Game, error) {
		return eng.HandleCustomAction(game, action, data)
	})
}

// apply runs one action against the stored snapshot under the game's lock. A
// rejected action leaves the stored snapshot as it was and returns it with the error.
func (that *GameManager) apply(
	ctx context.Context,
	id, method string,
	action func(eng engine.Engine, game entity.Game) (entity.Game, error),
) (entity.Game, error) {
	log := that.logger.With("method", method, "game_id", id)

	unlock := that.locks.Lock(id)
	defer unlock()

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return entity.Game{}, err
	}

	if err = game.ConfirmInProgress(); err != nil {
		return game, err
	}

	next, err := action(engine.For(game.Type), game)
	if err != nil {
		log.Debug("action rejected", "error", err)
		return game, err
	}

	if next.IsCompleted() {
		that.finalize(ctx, &next)
	}

	if err = that.save(ctx, next); err != nil {
		return game, err
	}

	return next, nil
}

// finalize stamps the end time and records the result. Stats and history are
// best effort: the finished game is stored even when they fail.
func (that *GameManager) finalize(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "finalize", "game_id", game.ID)

	endTime := that.now()
	game.EndTime = &endTime

	if err := that.historyRepo.Append(ctx, *game); err != nil {
		log.Error("failed to append game to history", "error", err)
	}

	names := make([]string, len(game.Players))
	winnerName := ""
	for i, player := range game.Players {
		names[i] = player.Name
		if player.ID == game.Winner {
			winnerName = player.Name
		}
	}

	if err := that.statsRepo.RecordResult(ctx, names, winnerName); err != nil {
		log.Error("failed to record stats", "error", err)
	}

	log.Info("game finished", "winner", winnerName)
}

func (that *GameManager) save(ctx context.Context, game entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	if that.publisher != nil {
		that.publisher.Publish(game)
	}

	return nil
}

// japanSettings fills the parts of requested settings that were left out.
func japanSettings(requested *entity.JapanSettings) entity.JapanSettings {
	settings := entity.DefaultJapanSettings()
	if requested == nil {
		return settings
	}

	if len(requested.BallPoints) > 0 {
		settings.BallPoints = requested.Clone().BallPoints
	}
	settings.OrderChangeInterval = requested.OrderChangeInterval

	return settings
}

func (that *GameManager) withDefaults(gameType entity.GameType, setups []entity.PlayerSetup) []entity.PlayerSetup {
	out := make([]entity.PlayerSetup, len(setups))
	for i, setup := range setups {
		switch gameType {
		case entity.GameTypeSetMatch:
			if setup.TargetSets <= 0 {
				setup.TargetSets = that.defaults.TargetSets
			}
		case entity.GameTypeRotation:
			if setup.TargetScore <= 0 {
				setup.TargetScore = that.defaults.TargetScore
			}
		}

		out[i] = setup
	}

	return out
}

// IsClientError reports whether err was caused by the request rather than the server.
func IsClientError(err error) bool {
	return errors.Is(err, apperror.ErrGameFinished) ||
		errors.Is(err, apperror.ErrGameIsNotStarted) ||
		errors.Is(err, apperror.ErrInvalidGameSetup) ||
		errors.Is(err, apperror.ErrPlayerNotFound) ||
		errors.Is(err, apperror.ErrInvalidPins) ||
		errors.Is(err, engine.ErrUnsupportedAction) ||
		errors.Is(err, engine.ErrInvalidMultiplier) ||
		errors.Is(err, engine.ErrInvalidPoints) ||
		errors.Is(err, ErrUnknownCommand)
}
