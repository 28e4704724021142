package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOps_Deterministic(t *testing.T) {
	keys := []Key{"a", "b"}
	ops1 := GenerateOps(rand.New(rand.NewSource(7)), keys, 50, 0.5, 100)
	ops2 := GenerateOps(rand.New(rand.NewSource(7)), keys, 50, 0.5, 100)
	assert.Equal(t, ops1, ops2)
}

func TestGenerateOps_ReadRatioExtremes(t *testing.T) {
	keys := []Key{"x"}

	for _, op := range GenerateOps(rand.New(rand.NewSource(1)), keys, 40, 1.0, 10) {
		assert.Equal(t, OpRead, op.Kind)
	}
	for _, op := range GenerateOps(rand.New(rand.NewSource(1)), keys, 40, 0.0, 10) {
		assert.Equal(t, OpWrite, op.Kind)
	}
}

func TestGenerateOps_ValuesAndKeysBounded(t *testing.T) {
	keys := []Key{"a", "b", "c"}
	ops := GenerateOps(rand.New(rand.NewSource(3)), keys, 200, 0.3, 17)
	require.Len(t, ops, 200)
	for _, op := range ops {
		assert.Contains(t, keys, op.Key)
		if op.Kind == OpWrite {
			assert.GreaterOrEqual(t, op.Value, Value(0))
			assert.Less(t, op.Value, Value(17))
		} else {
			assert.Equal(t, Value(0), op.Value)
		}
	}
}

func TestOpKind_String(t *testing.T) {
	assert.Equal(t, "read", OpRead.String())
	assert.Equal(t, "write", OpWrite.String())
}
