/*
Copyright 2024 Tim St. Pierre
Error codes reported by the display driver
*/
package hd44780

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// ErrorCode identifies why a driver call failed. The values are returned as
// errors and compare with errors.Is.
type ErrorCode uint8

const (
	ErrNone ErrorCode = iota
	ErrNotInitialized
	ErrNotRunning
	ErrInvalidMode
	ErrInvalidCellCount
	ErrInvalidCursor
	ErrNoSpace
)

var errorMessages = [...]string{
	ErrNone:             "no error",
	ErrNotInitialized:   "device is not initialized",
	ErrNotRunning:       "device is not running",
	ErrInvalidMode:      "invalid device mode",
	ErrInvalidCellCount: "invalid number of rows or columns",
	ErrInvalidCursor:    "cursor outside of the display",
	ErrNoSpace:          "no space left on the display",
}

func (e ErrorCode) String() string {
	if int(e) < len(errorMessages) {
		return errorMessages[e]
	}
	return fmt.Sprintf("unknown error %d", uint8(e))
}

func (e ErrorCode) Error() string {
	return "hd44780: " + e.String()
}

// Err returns the code of the most recent failing call.
func (d *Dev) Err() ErrorCode {
	return d.err
}

// ErrorMessage returns the text for Err.
func (d *Dev) ErrorMessage() string {
	return d.err.String()
}

func (d *Dev) fail(code ErrorCode) error {
	d.err = code
	log.WithField("code", uint8(code)).Warnf("%s: %s", d, code)
	return code
}
