package dataset

import (
	"errors"
	"fmt"
)

// Category sentinels. Every *Error unwraps to exactly one of them.
var (
	// ErrUnreadable indicates that a source could not be opened or read.
	ErrUnreadable = errors.New("dataset: source unreadable")

	// ErrFormat indicates a malformed source: wrong header or unparsable field.
	ErrFormat = errors.New("dataset: malformed source")

	// ErrValidation indicates a well-formed record describing an invalid entity or a duplicate id.
	ErrValidation = errors.New("dataset: invalid record")

	// ErrReference indicates a route endpoint that names no loaded point.
	ErrReference = errors.New("dataset: unknown point reference")
)

// Kind tells which of the two sources an error comes from.
type Kind int

const (
	// KindPoints is the points source.
	KindPoints Kind = iota
	// KindRoutes is the routes source.
	KindRoutes
)

// String returns "points" or "routes".
func (k Kind) String() string {
	if k == KindRoutes {
		return "routes"
	}
	return "points"
}

// Load error codes of the points source.
const (
	PointsOpen = iota + 1
	PointsHeader
	PointsID
	PointsName
	PointsLatitude
	PointsLongitude
	PointsInvalid
	PointsDuplicate
)

// Load error codes of the routes source.
const (
	RoutesOpen = iota + 1
	RoutesHeader
	RoutesID
	RoutesName
	RoutesEnd1
	RoutesEnd2
	RoutesLength
	RoutesInvalid
	RoutesEnd1Unknown
	RoutesEnd2Unknown
	RoutesDuplicate
)

// Error reports the first failure met while reading a source.
type Error struct {
	Kind   Kind   // which source failed
	Source string // source name, usually the file path
	Line   int    // 1-based line number; 0 when no line was read
	Code   int    // numeric load error code
	Err    error  // underlying cause, may be nil
}

// Error formats as "dataset: error <code> reading <kind> file <source> (line N): <cause>".
func (e *Error) Error() string {
	msg := fmt.Sprintf("dataset: error %d reading %s file %s", e.Code, e.Kind, e.Source)
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d)", e.Line)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the category sentinel and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.category()}
	}
	return []error{e.category(), e.Err}
}

// category maps the numeric code to its sentinel.
func (e *Error) category() error {
	if e.Code == 1 {
		return ErrUnreadable
	}
	if e.Kind == KindPoints {
		switch e.Code {
		case PointsInvalid, PointsDuplicate:
			return ErrValidation
		}
		return ErrFormat
	}
	switch e.Code {
	case RoutesInvalid, RoutesDuplicate:
		return ErrValidation
	case RoutesEnd1Unknown, RoutesEnd2Unknown:
		return ErrReference
	}
	return ErrFormat
}
