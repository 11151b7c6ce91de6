// Package game provides the turn scheduler and the terminal game loop.
package game

// RunState says whether the game is waiting for input or resolving a turn.
type RunState int

const (
	// StateAwaitingInput waits for the player's next intent.
	StateAwaitingInput RunState = iota
	// StatePlayerTurn resolves the turn the last intent started.
	StatePlayerTurn
)

// String returns a human-readable state name.
func (s RunState) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting_input"
	case StatePlayerTurn:
		return "player_turn"
	default:
		return "unknown"
	}
}
