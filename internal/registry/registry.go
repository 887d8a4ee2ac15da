// Package registry decouples game implementations from the platform.
// A game registers a factory under its ID in an init() function; the
// CLI and the TUI look games up by ID without importing their packages
// directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/lanerush/lanerush/internal/core"
)

// Game is the contract between a game and the platform. Implementations
// hold pure simulation and rendering logic; input mapping, timing, and
// terminal handling live in the platform layer.
type Game interface {
	// ID returns the stable identifier used for CLI commands and score
	// storage.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset starts or restarts a run with the given screen size, tick
	// rate, and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the frame's input actions and
	// reports the resulting state.
	Step(in core.InputFrame) core.StepResult

	// Render draws into the provided buffer. The buffer is not cleared
	// for the game; clear it if a full redraw is wanted.
	Render(dst *core.Screen)

	// State returns the current score/lives/level snapshot.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory under an ID. Called from game init()
// functions; duplicate IDs are a programming error and panic.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether an ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
