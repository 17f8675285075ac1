package optim

import (
	"math/rand"

	"github.com/unixpickle/anynet/anysgd"
)

// Shuffle shuffles a list of samples using gen.
//
// If gen is nil, the global source from math/rand is
// used.
func Shuffle(s anysgd.SampleList, gen *rand.Rand) {
	intn := rand.Intn
	if gen != nil {
		intn = gen.Intn
	}
	for i := 0; i < s.Len(); i++ {
		j := i + intn(s.Len()-i)
		s.Swap(i, j)
	}
}
