package nn

import (
	"fmt"

	"github.com/graft-ml/graft/internal/tensor"
)

// StateDict snapshots a module's parameters as named arrays, keyed by their
// position in Parameters() ("param.0", "param.1", ...). The returned arrays
// are clones; mutating them does not touch the module.
func StateDict(m Module) map[string]*tensor.Dense {
	params := m.Parameters()
	dict := make(map[string]*tensor.Dense, len(params))
	for i, p := range params {
		dict[fmt.Sprintf("param.%d", i)] = p.Data().Clone()
	}
	return dict
}

// LoadStateDict writes named arrays back into a module's parameter leaves.
// The module must have the same architecture the dict was snapshotted from:
// every parameter needs its entry, with a matching shape.
func LoadStateDict(m Module, dict map[string]*tensor.Dense) error {
	for i, p := range m.Parameters() {
		key := fmt.Sprintf("param.%d", i)
		d, ok := dict[key]
		if !ok {
			return fmt.Errorf("nn: state dict missing %q", key)
		}
		if err := p.SetData(d); err != nil {
			return fmt.Errorf("nn: state dict entry %q: %w", key, err)
		}
	}
	return nil
}
