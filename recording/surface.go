package recording

import "github.com/gogpu/icon"

// Surface records placement operations as commands. It implements
// icon.Surface and assigns z-orders in call order, starting at 1.
//
// The Surface is not safe for concurrent use.
type Surface struct {
	commands []Command
	nextZ    int
}

// New creates an empty recording surface.
func New() *Surface {
	return &Surface{
		commands: make([]Command, 0, 16),
		nextZ:    1,
	}
}

// AddImage records an image placement and returns the assigned z-order.
func (s *Surface) AddImage(img *icon.Pixmap, opts icon.ImageOptions) int {
	z := s.nextZ
	s.nextZ++
	s.commands = append(s.commands, ImageCommand{
		Image:   img,
		Options: opts,
		ZOrder:  z,
	})
	return z
}

// AddText records a text placement.
func (s *Surface) AddText(text string, opts icon.TextOptions) {
	if opts.ZOrder >= s.nextZ {
		s.nextZ = opts.ZOrder + 1
	}
	s.commands = append(s.commands, TextCommand{
		Text:    text,
		Options: opts,
	})
}

// Commands returns the recorded commands in placement order.
// The returned slice is owned by the Surface.
func (s *Surface) Commands() []Command {
	return s.commands
}

// Images returns only the recorded image commands, in placement order.
func (s *Surface) Images() []ImageCommand {
	var out []ImageCommand
	for _, c := range s.commands {
		if ic, ok := c.(ImageCommand); ok {
			out = append(out, ic)
		}
	}
	return out
}

// Texts returns only the recorded text commands, in placement order.
func (s *Surface) Texts() []TextCommand {
	var out []TextCommand
	for _, c := range s.commands {
		if tc, ok := c.(TextCommand); ok {
			out = append(out, tc)
		}
	}
	return out
}

// Replay applies all recorded commands to another surface, in order.
func (s *Surface) Replay(dst icon.Surface) {
	for _, c := range s.commands {
		c.apply(dst)
	}
}

// Reset discards all recorded commands and restarts z-order assignment.
func (s *Surface) Reset() {
	s.commands = s.commands[:0]
	s.nextZ = 1
}
