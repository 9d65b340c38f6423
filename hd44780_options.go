/*
Copyright 2024 Tim St. Pierre
Options for hd44780 character display
*/
package hd44780

import (
	"time"
)

type Opts struct {
	// Use the 5x10 dot font, only honored by single line displays
	Font5x10 bool
	// Show the underline cursor once running
	Cursor bool
	// Blink the character at the cursor once running
	Blink bool
	// Sleep blocks for at least the given duration
	Sleep func(time.Duration)
}

var DefaultOpts = Opts{
	Blink: true,
	Sleep: time.Sleep,
}

func (o *Opts) sleeper() func(time.Duration) {
	if o.Sleep == nil {
		return time.Sleep
	}
	return o.Sleep
}
