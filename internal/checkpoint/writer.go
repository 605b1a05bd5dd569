package checkpoint

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"time"

	"github.com/graft-ml/graft/internal/tensor"
)

const graftVersion = "0.1.0"

// Save writes the named parameters to path in .grft format. metadata is
// optional free-form context recorded in the header (epoch, loss, ...).
//
// Parameters are laid out in name order so identical state always produces
// an identical file.
func Save(path string, params map[string]*tensor.Dense, metadata map[string]string) error {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	header := Header{
		FormatVersion: FormatVersion,
		GraftVersion:  graftVersion,
		CreatedAt:     time.Now().UTC(),
		Params:        make([]ParamMeta, 0, len(params)),
		Metadata:      metadata,
	}

	var offset int64
	for _, name := range names {
		d := params[name]
		size := int64(d.NumElements()) * 8
		header.Params = append(header.Params, ParamMeta{
			Name:   name,
			Shape:  append([]int(nil), d.Shape()...),
			Offset: offset,
			Size:   size,
		})
		offset += size
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("checkpoint: failed to marshal header: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(MagicBytes)
	if err := binary.Write(&buf, binary.LittleEndian, uint32(FormatVersion)); err != nil {
		return fmt.Errorf("checkpoint: failed to write version: %w", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(headerJSON))); err != nil {
		return fmt.Errorf("checkpoint: failed to write header size: %w", err)
	}
	buf.Write(headerJSON)

	scratch := make([]byte, 8)
	for _, name := range names {
		for _, v := range params[name].Data() {
			binary.LittleEndian.PutUint64(scratch, math.Float64bits(v))
			buf.Write(scratch)
		}
	}

	sum := sha256.Sum256(buf.Bytes())
	buf.Write(sum[:])

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("checkpoint: failed to write %s: %w", path, err)
	}
	return nil
}
