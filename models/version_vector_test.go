package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionVector_IncrementAndGet(t *testing.T) {
	vv := NewVersionVector()

	assert.Equal(t, int64(0), vv.Get("dev_a"), "absent device reads as clock 0")

	assert.Equal(t, int64(1), vv.Increment("dev_a"))
	assert.Equal(t, int64(2), vv.Increment("dev_a"))
	assert.Equal(t, int64(1), vv.Increment("dev_b"))

	assert.Equal(t, int64(2), vv.Get("dev_a"))
	assert.Equal(t, int64(1), vv.Get("dev_b"))
}

func TestVersionVector_Merge(t *testing.T) {
	tests := []struct {
		name  string
		left  VersionVector
		right VersionVector
		want  VersionVector
	}{
		{
			name:  "disjoint devices unite",
			left:  VersionVector{"dev_a": 3},
			right: VersionVector{"dev_b": 5},
			want:  VersionVector{"dev_a": 3, "dev_b": 5},
		},
		{
			name:  "pointwise maximum wins",
			left:  VersionVector{"dev_a": 3, "dev_b": 7},
			right: VersionVector{"dev_a": 5, "dev_b": 2},
			want:  VersionVector{"dev_a": 5, "dev_b": 7},
		},
		{
			name:  "merge with empty is identity",
			left:  VersionVector{"dev_a": 3},
			right: VersionVector{},
			want:  VersionVector{"dev_a": 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.left.Clone()
			got.Merge(tt.right)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("merge is idempotent", func(t *testing.T) {
		vv := VersionVector{"dev_a": 3}
		other := VersionVector{"dev_a": 5, "dev_b": 1}
		vv.Merge(other)
		snapshot := vv.Clone()
		vv.Merge(other)
		assert.Equal(t, snapshot, vv)
	})
}

func TestVersionVector_Dominates(t *testing.T) {
	a := VersionVector{"dev_a": 2, "dev_b": 1}
	b := VersionVector{"dev_a": 1}

	assert.True(t, a.Dominates(b))
	assert.False(t, b.Dominates(a))

	// Concurrent vectors dominate in neither direction.
	c := VersionVector{"dev_a": 1, "dev_c": 4}
	assert.False(t, a.Dominates(c))
	assert.False(t, c.Dominates(a))

	assert.True(t, a.Dominates(a.Clone()))
	assert.True(t, a.Dominates(VersionVector{}))
}

func TestVersionVector_CloneIsIndependent(t *testing.T) {
	vv := VersionVector{"dev_a": 1}
	cp := vv.Clone()
	cp.Increment("dev_a")

	assert.Equal(t, int64(1), vv.Get("dev_a"))
	assert.Equal(t, int64(2), cp.Get("dev_a"))
}
