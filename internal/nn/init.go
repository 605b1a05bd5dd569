package nn

import (
	"math"
	"math/rand"

	"github.com/graft-ml/graft/internal/tensor"
)

// Xavier returns a weight array drawn from the Glorot uniform distribution
// U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))), which keeps activation
// variance stable across layers.
func Xavier(fanIn, fanOut int, shape tensor.Shape, rng *rand.Rand) *tensor.Dense {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	d := tensor.New(shape)
	data := d.Data()
	for i := range data {
		data[i] = (rng.Float64()*2 - 1) * bound
	}
	return d
}
