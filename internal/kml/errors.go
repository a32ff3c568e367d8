package kml

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingDocumentRoot means the tree has no Document node under
	// the kml root.
	ErrMissingDocumentRoot = errors.New("kml: missing Document root")

	// ErrMissingPlacemarks means the Document carries no Placemark
	// children at all.
	ErrMissingPlacemarks = errors.New("kml: no Placemark nodes in Document")
)

// MalformedCoordinateError reports a coordinate token that failed
// numeric parsing. Malformed tokens abort the whole pass; they are
// never allowed to propagate as NaN into length sums.
type MalformedCoordinateError struct {
	Token string
	Err   error
}

func (e *MalformedCoordinateError) Error() string {
	return fmt.Sprintf("kml: malformed coordinate %q: %v", e.Token, e.Err)
}

func (e *MalformedCoordinateError) Unwrap() error {
	return e.Err
}

// IsMalformedCoordinate reports whether err is (or wraps) a
// MalformedCoordinateError.
func IsMalformedCoordinate(err error) bool {
	var mc *MalformedCoordinateError
	return errors.As(err, &mc)
}
