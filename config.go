package archhive

import (
	"fmt"
	"io"
)

// Config holds process-wide, opt-in diagnostics for the world.
//
// With no debug writer set (the default) no diagnostic text is
// written; errors are still returned as usual. Diagnostics are a
// debugging convenience, never part of the control flow.
var Config config = config{}

type config struct {
	debug io.Writer
}

// SetDebug directs diagnostic text (type/system registration, spawn
// summaries) to w. Pass nil to silence it again.
func (c *config) SetDebug(w io.Writer) {
	c.debug = w
}

func (c *config) logf(format string, args ...any) {
	if c.debug == nil {
		return
	}
	fmt.Fprintf(c.debug, format+"\n", args...)
}
