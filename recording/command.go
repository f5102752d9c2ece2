// Package recording provides a Surface that records placement operations.
//
// Instead of rasterizing anything, the recording Surface captures every
// AddImage and AddText call as a typed command struct. Recordings can be
// inspected (the natural test double for placement logic) or replayed
// onto a real Surface later.
//
// Design follows typed command structs for inspectability rather than a
// binary serialization format.
//
// # Example
//
//	rec := recording.New()
//	ic.PlaceAt(rec, 2.5, 0.7)
//	for _, cmd := range rec.Commands() {
//	    fmt.Println(cmd)
//	}
//	rec.Replay(realSurface)
package recording

import (
	"fmt"

	"github.com/gogpu/icon"
)

// CommandType identifies the type of a recorded command.
type CommandType uint8

const (
	// CmdAddImage records an image artist placement.
	CmdAddImage CommandType = iota
	// CmdAddText records a text annotation placement.
	CmdAddText
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdAddImage: "AddImage",
	CmdAddText:  "AddText",
}

// String returns a string representation of the command type.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return fmt.Sprintf("Unknown(%d)", uint8(t))
}

// Command is a single recorded placement operation.
type Command interface {
	// Type returns the command type.
	Type() CommandType

	// String returns a human-readable form for debugging.
	String() string

	// apply replays the command onto a surface.
	apply(s icon.Surface)
}

// ImageCommand records an AddImage call together with the z-order the
// recorder assigned to it.
type ImageCommand struct {
	Image   *icon.Pixmap
	Options icon.ImageOptions
	ZOrder  int
}

// Type returns CmdAddImage.
func (c ImageCommand) Type() CommandType { return CmdAddImage }

// String returns a human-readable form for debugging.
func (c ImageCommand) String() string {
	return fmt.Sprintf("AddImage(%dx%d, anchor=(%g,%g), z=%d)",
		c.Image.Width(), c.Image.Height(),
		c.Options.Anchor.X, c.Options.Anchor.Y, c.ZOrder)
}

func (c ImageCommand) apply(s icon.Surface) {
	s.AddImage(c.Image, c.Options)
}

// TextCommand records an AddText call.
type TextCommand struct {
	Text    string
	Options icon.TextOptions
}

// Type returns CmdAddText.
func (c TextCommand) Type() CommandType { return CmdAddText }

// String returns a human-readable form for debugging.
func (c TextCommand) String() string {
	return fmt.Sprintf("AddText(%q, anchor=(%g,%g), z=%d)",
		c.Text, c.Options.Anchor.X, c.Options.Anchor.Y, c.Options.ZOrder)
}

func (c TextCommand) apply(s icon.Surface) {
	s.AddText(c.Text, c.Options)
}
