package htm

import (
	"bytes"
	"fmt"

	"github.com/htm-community/spatialpooler/utils"
)

//Dense binary matrix stores all entries in a flat bool slice
type DenseBinaryMatrix struct {
	Width   int
	Height  int
	entries []bool
}

//Create new dense binary matrix of specified size
func NewDenseBinaryMatrix(height, width int) *DenseBinaryMatrix {
	m := &DenseBinaryMatrix{}
	m.Height = height
	m.Width = width
	m.entries = make([]bool, width*height)
	return m
}

//Create dense binary matrix from specified dense values
func NewDenseBinaryMatrixFromDense(values [][]bool) *DenseBinaryMatrix {
	if len(values) < 1 {
		panic("No values specified.")
	}

	m := NewDenseBinaryMatrix(len(values), len(values[0]))
	for r := 0; r < m.Height; r++ {
		m.SetRowFromDense(r, values[r])
	}
	return m
}

// Creates a dense binary matrix from specified integer array
// (any values greater than 0 are true)
func NewDenseBinaryMatrixFromInts(values [][]int) *DenseBinaryMatrix {
	if len(values) < 1 {
		panic("No values specified.")
	}

	m := NewDenseBinaryMatrix(len(values), len(values[0]))

	for r := 0; r < m.Height; r++ {
		for c := 0; c < m.Width; c++ {
			if values[r][c] > 0 {
				m.Set(r, c, true)
			}
		}
	}

	return m
}

//Converts flat index to row/col
func (sm *DenseBinaryMatrix) toIndex(index int) (row int, col int) {
	row = index / sm.Width
	col = index % sm.Width
	return
}

//Returns all true/on indices
func (sm *DenseBinaryMatrix) Entries() []SparseEntry {
	result := make([]SparseEntry, 0, int(float64(len(sm.entries))*0.3))
	for idx, val := range sm.entries {
		if val {
			i, j := sm.toIndex(idx)
			result = append(result, SparseEntry{i, j})
		}
	}
	return result
}

//Returns flattend dense represenation
func (sm *DenseBinaryMatrix) Flatten() []bool {
	result := make([]bool, sm.Height*sm.Width)
	copy(result, sm.entries)
	return result
}

//Get value at row,col position
func (sm *DenseBinaryMatrix) Get(row int, col int) bool {
	sm.validateRowCol(row, col)
	return sm.entries[row*sm.Width+col]
}

//Set value at row,col position
func (sm *DenseBinaryMatrix) Set(row int, col int, value bool) {
	sm.validateRowCol(row, col)
	sm.entries[row*sm.Width+col] = value
}

//Replaces specified row with values, assumes values is ordered
//correctly
func (sm *DenseBinaryMatrix) ReplaceRow(row int, values []bool) {
	sm.validateRowWidth(row, len(values))

	for i := 0; i < sm.Width; i++ {
		sm.Set(row, i, values[i])
	}
}

//Replaces row with true values at specified indices
func (sm *DenseBinaryMatrix) ReplaceRowByIndices(row int, indices []int) {
	sm.validateRow(row)
	start := row * sm.Width
	for i := 0; i < sm.Width; i++ {
		sm.entries[start+i] = utils.ContainsInt(i, indices)
	}
}

//Returns dense row
func (sm *DenseBinaryMatrix) GetDenseRow(row int) []bool {
	sm.validateRow(row)
	result := make([]bool, sm.Width)

	start := row * sm.Width
	for i := 0; i < sm.Width; i++ {
		result[i] = sm.entries[start+i]
	}

	return result
}

//Returns a rows "on" indices
func (sm *DenseBinaryMatrix) GetRowIndices(row int) []int {
	sm.validateRow(row)
	result := make([]int, 0, sm.Width)
	start := row * sm.Width
	for i := 0; i < sm.Width; i++ {
		if sm.entries[start+i] {
			result = append(result, i)
		}
	}
	return result
}

//Sets a row from dense representation
func (sm *DenseBinaryMatrix) SetRowFromDense(row int, denseRow []bool) {
	sm.validateRowWidth(row, len(denseRow))
	start := row * sm.Width
	copy(sm.entries[start:start+sm.Width], denseRow)
}

//In a normal matrix this would be multiplication in binary terms
//we just and then sum the true entries per row
func (sm *DenseBinaryMatrix) RowAndSum(row []bool) []int {
	if len(row) != sm.Width {
		panic("Specified row is wider than matrix.")
	}
	result := make([]int, sm.Height)

	for idx, val := range sm.entries {
		if val {
			r, c := sm.toIndex(idx)
			if row[c] {
				result[r]++
			}
		}
	}

	return result
}

//Returns total true entries
func (sm *DenseBinaryMatrix) TotalNonZeroCount() int {
	return utils.CountTrue(sm.entries)
}

//Clears all entries
func (sm *DenseBinaryMatrix) Clear() {
	utils.FillSliceBool(sm.entries, false)
}

//Fills specified row with specified value
func (sm *DenseBinaryMatrix) FillRow(row int, val bool) {
	for j := 0; j < sm.Width; j++ {
		sm.Set(row, j, val)
	}
}

//Copys a matrix
func (sm *DenseBinaryMatrix) Copy() *DenseBinaryMatrix {
	if sm == nil {
		return nil
	}

	result := new(DenseBinaryMatrix)
	result.Width = sm.Width
	result.Height = sm.Height
	result.entries = make([]bool, len(sm.entries))
	copy(result.entries, sm.entries)

	return result
}

func (sm *DenseBinaryMatrix) ToString() string {
	var buffer bytes.Buffer

	for r := 0; r < sm.Height; r++ {
		for c := 0; c < sm.Width; c++ {
			if sm.Get(r, c) {
				buffer.WriteByte('1')
			} else {
				buffer.WriteByte('0')
			}
		}
		buffer.WriteByte('\n')
	}

	return buffer.String()
}

func (sm *DenseBinaryMatrix) validateRow(row int) {
	if row < 0 || row >= sm.Height {
		panic(fmt.Sprintf("Specified row %v is out of bounds.", row))
	}
}

func (sm *DenseBinaryMatrix) validateRowCol(row int, col int) {
	sm.validateRow(row)
	if col < 0 || col >= sm.Width {
		panic(fmt.Sprintf("Specified col %v is out of bounds.", col))
	}
}

func (sm *DenseBinaryMatrix) validateRowWidth(row int, width int) {
	sm.validateRow(row)
	if width != sm.Width {
		panic("Specified row is wider than matrix.")
	}
}
