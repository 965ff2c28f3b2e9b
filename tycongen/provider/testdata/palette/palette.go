// Package palette is a fixture for source extraction.
package palette

// Color identifies a render channel.
type Color int32

const (
	// Red is the default channel.
	Red Color = iota
	Green
	Blue
)

// Mode uses explicit values out of declaration order.
type Mode uint8

const (
	ModeOff  Mode = 4
	ModeOn   Mode = 1
	ModeAuto Mode = 2
)

// Label is not integral and must be skipped.
type Label string

const LabelDefault Label = "default"

type hidden int

const hiddenOne hidden = 1
