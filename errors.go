package splinker

import "errors"

var (
	// ErrInvalidColorSpec is returned when a color is specified with a partial or mixed
	// set of channels, or with a channel outside its range.
	ErrInvalidColorSpec = errors.New("invalid color specification")

	// ErrIndexOutOfRange is returned by indexed accessors when the index does not name
	// an existing element.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrLayerNotFound is returned when looking up a layer by a name that no layer has.
	ErrLayerNotFound = errors.New("layer not found")

	ErrUnknownEditor   = errors.New("unknown point editor")
	ErrUnknownGradient = errors.New("unknown gradient")
)
