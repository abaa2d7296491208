package blockfall

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Mode         string
	Level        int
	FallInterval time.Duration
	Paused       bool
	Engine       engine.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{Mode: string(g.mode)}
	}
	return Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		Level:        g.Level(),
		FallInterval: g.engine.FallInterval(),
		Paused:       g.paused,
		Engine:       g.engine.Snapshot(),
	}
}
