package mosaic

import "errors"

var (
	// ErrInvalidConfig reports a configuration rejected before any image is read.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnreadableTile marks a candidate tile that could not be decoded.
	// It only ever appears inside a Skipped entry.
	ErrUnreadableTile = errors.New("unreadable tile image")

	// ErrUnreadableTarget is returned when the target image cannot be decoded.
	ErrUnreadableTarget = errors.New("unreadable target image")

	// ErrUnwritableOutput is returned when the mosaic cannot be written.
	ErrUnwritableOutput = errors.New("unwritable output path")

	// ErrEmptyLibrary is logged when ingestion produced no tiles. It is not
	// returned as a failure: every block simply stays unmatched.
	ErrEmptyLibrary = errors.New("tile library is empty")
)
