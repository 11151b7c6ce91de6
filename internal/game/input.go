package game

import "github.com/gdamore/tcell/v2"

// Action is what a key press asks for.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionQuit
)

// Intent is a decoded key press.
type Intent struct {
	Action Action
	DX, DY int
}

// Move returns a movement intent.
func Move(dx, dy int) Intent {
	return Intent{Action: ActionMove, DX: dx, DY: dy}
}

var runeMoves = map[rune][2]int{
	'h': {-1, 0}, 'l': {1, 0}, 'k': {0, -1}, 'j': {0, 1},
	'y': {-1, -1}, 'u': {1, -1}, 'b': {-1, 1}, 'n': {1, 1},
}

// IntentForKey maps arrows and vi keys to moves, Esc, Ctrl-C and q to quit.
func IntentForKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Action: ActionQuit}
	case tcell.KeyUp:
		return Move(0, -1)
	case tcell.KeyDown:
		return Move(0, 1)
	case tcell.KeyLeft:
		return Move(-1, 0)
	case tcell.KeyRight:
		return Move(1, 0)
	case tcell.KeyRune:
		r := ev.Rune()
		if r == 'q' || r == 'Q' {
			return Intent{Action: ActionQuit}
		}
		if d, ok := runeMoves[r]; ok {
			return Move(d[0], d[1])
		}
	}
	return Intent{}
}
