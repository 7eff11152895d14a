package htm

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestComputeCoordinates(t *testing.T) {
	assert.Equal(t, []int{1, 1}, ComputeCoordinates(5, []int{4, 4}))
	assert.Equal(t, []int{0, 0}, ComputeCoordinates(0, []int{4, 4}))
	assert.Equal(t, []int{3, 3}, ComputeCoordinates(15, []int{4, 4}))
	assert.Equal(t, []int{2, 1, 2}, ComputeCoordinates(29, []int{5, 4, 3}))
	assert.Equal(t, []int{7}, ComputeCoordinates(7, []int{10}))
}

func TestComputeIndex(t *testing.T) {
	assert.Equal(t, 5, ComputeIndex([]int{1, 1}, []int{4, 4}))
	assert.Equal(t, 29, ComputeIndex([]int{2, 1, 2}, []int{5, 4, 3}))
	assert.Equal(t, 7, ComputeIndex([]int{7}, []int{10}))

	// Round trips
	dims := []int{5, 7, 3}
	for i := 0; i < 105; i++ {
		assert.Equal(t, i, ComputeIndex(ComputeCoordinates(i, dims), dims))
	}
}

func TestComputeIndexPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic for out of bounds coordinate")
		}
	}()
	ComputeIndex([]int{4}, []int{4})
}

func TestNeighborsND1DClip(t *testing.T) {
	// At the edge without wrap the neighborhood is clipped
	assert.Equal(t, []int{1, 2, 3}, NeighborsND(0, 3, []int{10}, false))
	assert.Equal(t, []int{6, 7, 8}, NeighborsND(9, 3, []int{10}, false))
	assert.Equal(t, []int{2, 3, 4, 6, 7, 8}, NeighborsND(5, 3, []int{10}, false))
}

func TestNeighborsND1DWrap(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 7, 8, 9}, NeighborsND(0, 3, []int{10}, true))
	assert.Equal(t, []int{0, 1, 2, 6, 7, 8}, NeighborsND(9, 3, []int{10}, true))
}

func TestNeighborsND1DWrapLargeRadius(t *testing.T) {
	// Radius covering the whole dimension returns everything but the center
	assert.Equal(t, []int{0, 1, 3, 4}, NeighborsND(2, 10, []int{5}, true))
}

func TestNeighborsND2D(t *testing.T) {
	expected := []int{6, 7, 8, 11, 13, 16, 17, 18}
	assert.Equal(t, expected, NeighborsND(12, 1, []int{5, 5}, false))

	// Corner without wrap
	assert.Equal(t, []int{1, 5, 6}, NeighborsND(0, 1, []int{5, 5}, false))

	// Corner with wrap picks up the far edges
	expected = []int{1, 4, 5, 6, 9, 20, 21, 24}
	assert.Equal(t, expected, NeighborsND(0, 1, []int{5, 5}, true))
}

func TestNeighborsNDZeroRadius(t *testing.T) {
	assert.Equal(t, 0, len(NeighborsND(3, 0, []int{10}, false)))
}
