// Package checkpoint provides the native .grft format for saving and loading
// trained parameters.
//
// A .grft file holds named float64 arrays:
//
//	magic "GRFT" | version uint32 | header size uint32 | JSON header |
//	raw little-endian float64 data | SHA-256 checksum
//
// The JSON header lists each parameter's name, shape and offset into the
// data section. The checksum covers everything before it, so corruption
// anywhere in the file is detected on load.
package checkpoint

import "time"

// Format constants.
const (
	MagicBytes    = "GRFT"
	FormatVersion = 1
	ChecksumSize  = 32 // SHA-256

	// fixedPrefixSize is the byte length of magic + version + header size.
	fixedPrefixSize = 4 + 4 + 4

	// maxHeaderSize bounds the JSON header so a corrupted length field
	// cannot trigger a huge allocation.
	maxHeaderSize = 16 << 20
)

// Header is the JSON header of a .grft file.
type Header struct {
	FormatVersion int               `json:"format_version"`
	GraftVersion  string            `json:"graft_version"`
	CreatedAt     time.Time         `json:"created_at"`
	Params        []ParamMeta       `json:"params"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// ParamMeta describes one named parameter in the data section.
type ParamMeta struct {
	Name   string `json:"name"`
	Shape  []int  `json:"shape"`
	Offset int64  `json:"offset"` // bytes from the start of the data section
	Size   int64  `json:"size"`   // bytes
}
