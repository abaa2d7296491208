package blockfall

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Bot produces a reproducible stream of random input frames for
// headless runs.
type Bot struct {
	rng *rand.Rand
}

// NewBot creates a bot seeded for reproducible play.
func NewBot(seed int64) *Bot {
	return &Bot{rng: rand.New(rand.NewSource(seed))}
}

// botActions weights the moves a bot may press in one tick.
var botActions = []core.Action{
	core.ActionLeft,
	core.ActionLeft,
	core.ActionRight,
	core.ActionRight,
	core.ActionRotate,
	core.ActionDown,
}

// Next returns the input for one tick. Most ticks are idle.
func (b *Bot) Next() core.InputFrame {
	in := core.NewInputFrame()
	if b.rng.Intn(4) == 0 {
		in.Set(botActions[b.rng.Intn(len(botActions))])
	}
	return in
}

// RunHeadless steps g with the bot's input until the game ends or ticks
// run out. onStep, if set, sees every step result. It returns the number
// of ticks played.
func RunHeadless(g *Game, bot *Bot, ticks int, onStep func(core.StepResult)) int {
	played := 0
	for played < ticks && !g.State().GameOver {
		res := g.Step(bot.Next())
		played++
		if onStep != nil {
			onStep(res)
		}
	}
	return played
}
