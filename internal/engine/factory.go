package engine

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
)

var engines = map[entity.GameType]Engine{
	entity.GameTypeSetMatch: NewSetMatchEngine(time.Now),
	entity.GameTypeRotation: NewRotationEngine(time.Now),
	entity.GameTypeBowlard:  NewBowlardEngine(time.Now),
	entity.GameTypeJapan:    NewJapanEngine(time.Now),
}

// For returns the engine for a game type. An unsupported type is a programming
// error and panics.
func For(gameType entity.GameType) Engine {
	engine, ok := engines[gameType]
	if !ok {
		panic(fmt.Sprintf("engine: unsupported game type %q", gameType))
	}

	return engine
}
