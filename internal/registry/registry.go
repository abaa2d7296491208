// Package registry holds the factories for playable game modes.
// Modes register themselves in init() functions so the CLI and the
// terminal platform can list and create them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Game is the contract between a game mode and the terminal platform.
// Implementations are pure logic with no Bubble Tea dependency; the
// platform owns input mapping, timing and drawing to the terminal.
type Game interface {
	// ID returns a unique identifier (e.g. "blockfall"), used by the CLI.
	ID() string

	// Title returns a human-readable name for menus and the HUD.
	Title() string

	// Reset starts a fresh session. Called once at start and again on restart.
	// The RuntimeConfig provides screen size, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the session by one fixed tick with the actions
	// pressed since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the session into the screen buffer.
	Render(dst *core.Screen)

	// State returns the summary the platform shows and checks for game over.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
