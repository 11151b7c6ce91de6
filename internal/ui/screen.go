// Package ui draws the dungeon and its entities in a terminal using tcell.
package ui

import "github.com/gdamore/tcell/v2"

var defaultStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

// Screen is the terminal surface the renderer draws frames on.
type Screen struct {
	screen tcell.Screen
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes s, which may be a tcell simulation screen.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(defaultStyle)
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent blocks until the next key or resize event. It returns nil once the screen is closed.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Sync redraws every cell, used after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// BeginFrame blanks the back buffer.
func (s *Screen) BeginFrame() {
	s.screen.Clear()
}

// EndFrame pushes the back buffer to the terminal.
func (s *Screen) EndFrame() {
	s.screen.Show()
}

// Put draws one glyph.
func (s *Screen) Put(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// DrawText writes text from (x, y), clipped at the right edge.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) {
	width, _ := s.screen.Size()
	for _, r := range text {
		if x >= width {
			return
		}
		s.Put(x, y, r, style)
		x++
	}
}

// Fits reports whether a width x height area fits on the terminal.
func (s *Screen) Fits(width, height int) bool {
	w, h := s.screen.Size()
	return width <= w && height <= h
}
