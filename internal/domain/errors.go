package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyDeck is returned when deck construction yields no slides and the
// caller required at least one.
var ErrEmptyDeck = errors.New("no usable slide documents")

// ErrSlideOutOfRange is returned on out-of-range slide access. Normal
// navigation clamps and never hits this; it indicates caller misuse.
var ErrSlideOutOfRange = errors.New("slide index out of range")

// ErrInvalidTarget is returned for a go-to request naming a slide number
// that does not exist. Non-fatal: state is left unchanged.
var ErrInvalidTarget = errors.New("no such slide")

// ParseError describes a malformed slide document.
type ParseError struct {
	Name   string // document name (filename)
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Name, e.Reason)
}
