// Package input turns SDL2 events into key presses and window events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType is the kind of a translated event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
)

// Event is a translated SDL event.
type Event struct {
	Type   EventType
	Key    rune // EventKeyDown; 0 for keys without a character
	Shift  bool
	Width  int
	Height int
}

// Input collects the events of one frame.
type Input struct {
	events []Event
}

// New creates an input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls every pending SDL event. It returns true if the window was
// closed.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		e, ok := Translate(event)
		if !ok {
			continue
		}
		i.events = append(i.events, e)
		if e.Type == EventQuit {
			quit = true
		}
	}
	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Translate converts one SDL event. Key repeats, key releases and events
// the cube has no use for are dropped.
func Translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return Event{}, false
		}
		return Event{
			Type:  EventKeyDown,
			Key:   KeyRune(e.Keysym.Sym),
			Shift: e.Keysym.Mod&uint16(sdl.KMOD_SHIFT) != 0,
		}, true
	}
	return Event{}, false
}

// KeyRune returns the character of an SDL keycode. Printable ASCII keys,
// space and escape map to themselves; everything else gives 0.
func KeyRune(sym sdl.Keycode) rune {
	if sym == sdl.K_ESCAPE || (sym >= sdl.K_SPACE && sym <= sdl.K_z) {
		return rune(sym)
	}
	return 0
}
