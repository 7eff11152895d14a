package htm

import (
	"github.com/htm-community/spatialpooler/utils"
	"github.com/stretchr/testify/assert"
	"testing"
)

//Tests getting/setting values
func TestGetSet(t *testing.T) {

	sm := NewSparseBinaryMatrix(10, 10)
	sm.Set(2, 4, true)
	sm.Set(6, 5, true)
	sm.Set(7, 5, false)

	if !sm.Get(2, 4) {
		t.Errorf("Was false expected true @ [2,4]")
	}

	if !sm.Get(6, 5) {
		t.Errorf("Was false expected true @ [6,5]")
	}

	if sm.Get(7, 5) {
		t.Errorf("Was true expected false @ [7,5]")
	}

	sm.Set(6, 5, false)
	if sm.Get(6, 5) {
		t.Errorf("Was true expected false @ [6,5]")
	}

}

func TestRowReplace(t *testing.T) {
	sm := NewSparseBinaryMatrix(10, 10)
	sm.Set(2, 4, true)
	sm.Set(6, 5, true)
	sm.Set(7, 5, true)
	sm.Set(8, 8, true)

	if !sm.Get(8, 8) {
		t.Errorf("Was false expected true @ [8,8]")
	}

	newRow := make([]bool, 10)
	newRow[6] = true
	sm.ReplaceRow(8, newRow)

	if !sm.Get(8, 6) {
		t.Errorf("Was false expected true @ [8,6]")
	}

	if sm.Get(8, 8) {
		t.Errorf("Was true expected false @ [8,8]")
	}

}

func TestReplaceRowByIndices(t *testing.T) {
	sm := NewSparseBinaryMatrix(4, 6)
	sm.ReplaceRowByIndices(1, []int{5, 0, 3})

	assert.Equal(t, []int{0, 3, 5}, sm.GetRowIndices(1))
	assert.Equal(t, utils.Make1DBool([]int{1, 0, 0, 1, 0, 1}), sm.GetDenseRow(1))

	sm.ReplaceRowByIndices(1, []int{2})
	assert.Equal(t, []int{2}, sm.GetRowIndices(1))

	sm.ReplaceRowByIndices(1, nil)
	assert.Equal(t, 0, len(sm.GetRowIndices(1)))
	assert.Equal(t, 0, sm.TotalNonZeroCount())
}

func TestFromDense(t *testing.T) {
	sm := NewSparseBinaryMatrixFromDense(utils.Make2DBool([][]int{
		{0, 1, 0, 0, 0},
		{1, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}))

	assert.Equal(t, 3, sm.Height)
	assert.Equal(t, 5, sm.Width)
	assert.Equal(t, []int{1}, sm.GetRowIndices(0))
	assert.Equal(t, []int{0, 1, 3}, sm.GetRowIndices(1))
	assert.Equal(t, 6, sm.TotalNonZeroCount())
}

func TestRowAndSum(t *testing.T) {
	sm := NewSparseBinaryMatrixFromDense(utils.Make2DBool([][]int{
		{0, 1, 0, 0, 0},
		{1, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
		{0, 0, 0, 0, 0},
	}))

	input := utils.Make1DBool([]int{1, 1, 0, 0, 1})
	assert.Equal(t, []int{1, 2, 2, 0}, sm.RowAndSum(input))

	input = utils.Make1DBool([]int{0, 0, 0, 0, 0})
	assert.Equal(t, []int{0, 0, 0, 0}, sm.RowAndSum(input))
}

func TestSparseCopy(t *testing.T) {
	sm := NewSparseBinaryMatrix(3, 3)
	sm.Set(1, 2, true)
	cp := sm.Copy()
	cp.Set(1, 2, false)

	if !sm.Get(1, 2) {
		t.Errorf("Copy shares state with source")
	}
}
