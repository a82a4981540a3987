package img2braille

import "errors"

// Error kinds raised by the library. All are terminal for the current
// invocation: nothing is retried and no partial output is produced.
var (
	// ErrMissingDependency indicates the external image tool could not
	// be found or invoked.
	ErrMissingDependency = errors.New("image tool not found")

	// ErrUnreadableImage indicates the source image is missing, corrupt,
	// or in an unsupported format.
	ErrUnreadableImage = errors.New("unreadable image")

	// ErrInvalidInput indicates a malformed pixel buffer or option value,
	// a contract violation between preprocessor and renderer.
	ErrInvalidInput = errors.New("invalid input")
)
