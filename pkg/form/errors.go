package form

import "errors"

var (
	// ErrFieldNotFound is returned when looking up a name that is not
	// registered on the form. Use HasField first when absence is expected.
	ErrFieldNotFound = errors.New("field not found")
	// ErrUnknownField is returned when a row is asked to place a field by a
	// name the owning form does not know.
	ErrUnknownField = errors.New("unknown field")
	// ErrForeignField is returned when a row is asked to place a field that
	// belongs to a different form.
	ErrForeignField = errors.New("field belongs to another form")
	// ErrForeignLayout is returned when attaching a layout built for a
	// different form.
	ErrForeignLayout = errors.New("layout belongs to another form")
	// ErrInvalidDescriptor is returned for layout array entries outside the
	// bool / string / list-of-strings grammar.
	ErrInvalidDescriptor = errors.New("invalid layout descriptor")
)
