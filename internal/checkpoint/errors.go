package checkpoint

import "errors"

// Common errors.
var (
	ErrInvalidMagic       = errors.New("invalid magic bytes: not a .grft file")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrTruncated          = errors.New("file truncated")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrParamOutOfBounds   = errors.New("parameter extends beyond data section")
)
