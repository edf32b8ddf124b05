// Package controls maps keyboard keys to cube commands.
package controls

import (
	"fmt"
	"unicode"

	"github.com/Faultbox/rubik/internal/anim"
	"github.com/Faultbox/rubik/internal/cube"
)

// Kind is the kind of a command.
type Kind int

const (
	KindNone Kind = iota
	KindTurn
	KindView
	KindScramble
	KindCancel
	KindUndo
	KindReset
	KindZoom
	KindScreenshot
	KindQuit
)

// Command is what a key press asks for.
type Command struct {
	Kind Kind
	Move cube.Move      // KindTurn
	View anim.Direction // KindView
	Zoom int            // KindZoom: +1 closer, -1 further
}

func (c Command) String() string {
	switch c.Kind {
	case KindTurn:
		return "turn " + c.Move.String()
	case KindView:
		return "view " + c.View.String()
	case KindScramble:
		return "scramble"
	case KindCancel:
		return "cancel"
	case KindUndo:
		return "undo"
	case KindReset:
		return "reset view"
	case KindZoom:
		if c.Zoom > 0 {
			return "zoom in"
		}
		return "zoom out"
	case KindScreenshot:
		return "screenshot"
	case KindQuit:
		return "quit"
	}
	return "none"
}

var viewKeys = map[rune]anim.Direction{
	'1': anim.YawLeft,
	'3': anim.YawRight,
	'2': anim.PitchDown,
	'5': anim.PitchUp,
}

// Lookup returns the command bound to key. Turn letters give the prime turn
// when shift is held.
func Lookup(key rune, shift bool) (Command, bool) {
	if t, ok := cube.TurnForKey(key); ok {
		return Command{Kind: KindTurn, Move: cube.Move{Turn: t, Prime: shift || unicode.IsUpper(key)}}, true
	}
	if d, ok := viewKeys[key]; ok {
		return Command{Kind: KindView, View: d}, true
	}

	switch unicode.ToLower(key) {
	case 'h':
		return Command{Kind: KindScramble}, true
	case 'u':
		return Command{Kind: KindUndo}, true
	case '0':
		return Command{Kind: KindReset}, true
	case '=', '+':
		return Command{Kind: KindZoom, Zoom: 1}, true
	case '-':
		return Command{Kind: KindZoom, Zoom: -1}, true
	case 'p':
		return Command{Kind: KindScreenshot}, true
	case ' ':
		return Command{Kind: KindCancel}, true
	case 'q', 0x1b:
		return Command{Kind: KindQuit}, true
	}
	return Command{}, false
}

// Binding is one row of the key help.
type Binding struct {
	Keys string
	Help string
}

// Bindings lists every key for help output.
func Bindings() []Binding {
	out := make([]Binding, 0, len(cube.Turns)+9)
	for _, t := range cube.Turns {
		out = append(out, Binding{
			Keys: fmt.Sprintf("%c / shift+%c", t.Key, t.Key),
			Help: fmt.Sprintf("turn %s layer / inverse", t.Name),
		})
	}
	return append(out,
		Binding{"1 / 3", "yaw cube left / right"},
		Binding{"2 / 5", "pitch cube down / up"},
		Binding{"0", "reset view"},
		Binding{"= / -", "zoom in / out"},
		Binding{"h", "scramble"},
		Binding{"u", "undo scramble and turns"},
		Binding{"p", "save screenshot"},
		Binding{"space", "cancel queued turns"},
		Binding{"q / esc", "quit"},
	)
}
