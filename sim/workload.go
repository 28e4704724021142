package sim

import "math/rand"

// OpKind selects between a read and a write.
type OpKind int

const (
	OpRead OpKind = iota
	OpWrite
)

func (k OpKind) String() string {
	if k == OpWrite {
		return "write"
	}
	return "read"
}

// Op is one driver-issued operation. Value is ignored for reads.
type Op struct {
	Kind  OpKind
	Key   Key
	Value Value
}

// GenerateOps produces a deterministic operation sequence for one unit: each
// op is a read with probability readRatio, keys are chosen uniformly, and
// write values are drawn uniformly from [0, valueMax). The core accepts any
// call sequence; this generator only exists so the CLI driver has a
// reproducible one.
func GenerateOps(rng *rand.Rand, keys []Key, n int, readRatio float64, valueMax int64) []Op {
	ops := make([]Op, 0, n)
	for i := 0; i < n; i++ {
		key := keys[rng.Intn(len(keys))]
		if rng.Float64() < readRatio {
			ops = append(ops, Op{Kind: OpRead, Key: key})
			continue
		}
		ops = append(ops, Op{Kind: OpWrite, Key: key, Value: Value(rng.Int63n(valueMax))})
	}
	return ops
}
