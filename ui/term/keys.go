package term

import (
	"github.com/gdamore/tcell/v2"

	"gesture-snake/game/types"
)

// Command is what a key press asks the frontend to do
type Command int

const (
	CmdNone Command = iota
	CmdDirection
	CmdPause
	CmdQuit
)

// MapKey translates a key event. Direction is only meaningful for
// CmdDirection.
func MapKey(key tcell.Key, r rune) (Command, types.Direction) {
	switch key {
	case tcell.KeyUp:
		return CmdDirection, types.Up
	case tcell.KeyDown:
		return CmdDirection, types.Down
	case tcell.KeyLeft:
		return CmdDirection, types.Left
	case tcell.KeyRight:
		return CmdDirection, types.Right
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit, types.Stop
	case tcell.KeyRune:
	default:
		return CmdNone, types.Stop
	}

	switch r {
	case 'w', 'W', 'k':
		return CmdDirection, types.Up
	case 's', 'S', 'j':
		return CmdDirection, types.Down
	case 'a', 'A', 'h':
		return CmdDirection, types.Left
	case 'd', 'D', 'l':
		return CmdDirection, types.Right
	case 'p', 'P', ' ':
		return CmdPause, types.Stop
	case 'q', 'Q':
		return CmdQuit, types.Stop
	}
	return CmdNone, types.Stop
}
