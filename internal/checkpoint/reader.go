package checkpoint

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/graft-ml/graft/internal/tensor"
)

// Load reads a .grft file, validating the magic bytes, format version,
// checksum and every parameter's bounds before materializing arrays.
func Load(path string) (map[string]*tensor.Dense, *Header, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("checkpoint: failed to read %s: %w", path, err)
	}

	if len(raw) < fixedPrefixSize+ChecksumSize {
		return nil, nil, fmt.Errorf("checkpoint: %w", ErrTruncated)
	}
	if string(raw[:4]) != MagicBytes {
		return nil, nil, fmt.Errorf("checkpoint: %w", ErrInvalidMagic)
	}
	version := binary.LittleEndian.Uint32(raw[4:8])
	if version != FormatVersion {
		return nil, nil, fmt.Errorf("checkpoint: %w: %d", ErrUnsupportedVersion, version)
	}

	body := raw[:len(raw)-ChecksumSize]
	var stored [ChecksumSize]byte
	copy(stored[:], raw[len(raw)-ChecksumSize:])
	if sha256.Sum256(body) != stored {
		return nil, nil, fmt.Errorf("checkpoint: %w", ErrChecksumMismatch)
	}

	headerSize := binary.LittleEndian.Uint32(raw[8:12])
	if headerSize > maxHeaderSize {
		return nil, nil, fmt.Errorf("checkpoint: %w: %d bytes", ErrHeaderTooLarge, headerSize)
	}
	if fixedPrefixSize+int(headerSize) > len(body) {
		return nil, nil, fmt.Errorf("checkpoint: %w", ErrTruncated)
	}

	var header Header
	if err := json.Unmarshal(body[fixedPrefixSize:fixedPrefixSize+int(headerSize)], &header); err != nil {
		return nil, nil, fmt.Errorf("checkpoint: failed to parse header: %w", err)
	}

	data := body[fixedPrefixSize+int(headerSize):]
	params := make(map[string]*tensor.Dense, len(header.Params))
	for _, meta := range header.Params {
		// Compare by subtraction so a crafted header cannot wrap the sum.
		if meta.Offset < 0 || meta.Size < 0 || meta.Offset > int64(len(data))-meta.Size {
			return nil, nil, fmt.Errorf("checkpoint: %w: %q", ErrParamOutOfBounds, meta.Name)
		}
		shape := tensor.Shape(meta.Shape)
		if int64(shape.NumElements())*8 != meta.Size {
			return nil, nil, fmt.Errorf("checkpoint: parameter %q: shape %v does not match %d bytes",
				meta.Name, shape, meta.Size)
		}
		values := make([]float64, shape.NumElements())
		for i := range values {
			bits := binary.LittleEndian.Uint64(data[meta.Offset+int64(i)*8:])
			values[i] = math.Float64frombits(bits)
		}
		d, err := tensor.FromSlice(values, shape)
		if err != nil {
			return nil, nil, fmt.Errorf("checkpoint: parameter %q: %w", meta.Name, err)
		}
		params[meta.Name] = d
	}
	return params, &header, nil
}
