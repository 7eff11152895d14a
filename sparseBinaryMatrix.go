package htm

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/htm-community/spatialpooler/utils"
)

//Entry of a binary matrix
type SparseEntry struct {
	Row int
	Col int
}

//Items are indexes of non-zero columns
type SparseRow []int

//Sparse binary matrix stores indexes of non-zero entries in matrix
//to conserve space. rows is a map of non-zero rows indexed by row index.
type SparseBinaryMatrix struct {
	Width  int
	Height int
	rows   map[int]SparseRow
}

//Create new sparse binary matrix of specified size
func NewSparseBinaryMatrix(height, width int) *SparseBinaryMatrix {
	m := &SparseBinaryMatrix{}
	m.Height = height
	m.Width = width
	m.rows = make(map[int]SparseRow, int(float64(height)*0.03)+1)
	return m
}

//Create sparse binary matrix from specified dense matrix
func NewSparseBinaryMatrixFromDense(values [][]bool) *SparseBinaryMatrix {
	if len(values) < 1 {
		panic("No values specified.")
	}

	m := NewSparseBinaryMatrix(len(values), len(values[0]))
	for r := 0; r < m.Height; r++ {
		m.ReplaceRow(r, values[r])
	}
	return m
}

func (sm *SparseBinaryMatrix) validateRow(row int) {
	if row < 0 || row >= sm.Height {
		panic(fmt.Sprintf("Specified row %v is out of bounds.", row))
	}
}

func (sm *SparseBinaryMatrix) validateCol(col int) {
	if col < 0 || col >= sm.Width {
		panic(fmt.Sprintf("Specified col %v is out of bounds.", col))
	}
}

//Get value at row,col position
func (sm *SparseBinaryMatrix) Get(row int, col int) bool {
	sm.validateRow(row)
	sm.validateCol(col)
	return utils.ContainsInt(col, sm.rows[row])
}

func (sm *SparseBinaryMatrix) delete(row int, col int) {
	r, ok := sm.rows[row]
	if !ok {
		return
	}
	for x := 0; x < len(r); x++ {
		if r[x] == col {
			sm.rows[row] = append(r[:x], r[x+1:]...)
			break
		}
	}
	if len(sm.rows[row]) < 1 {
		//delete row entry
		delete(sm.rows, row)
	}
}

//Set value at row,col position
func (sm *SparseBinaryMatrix) Set(row int, col int, value bool) {
	sm.validateRow(row)
	sm.validateCol(col)
	if value {
		if !utils.ContainsInt(col, sm.rows[row]) {
			sm.rows[row] = append(sm.rows[row], col)
			sort.Ints(sm.rows[row])
		}
	} else {
		sm.delete(row, col)
	}
}

//Replaces specified row with values from dense representation
func (sm *SparseBinaryMatrix) ReplaceRow(row int, values []bool) {
	sm.validateRow(row)
	if len(values) != sm.Width {
		panic("Specified row width does not match matrix.")
	}
	sm.ReplaceRowByIndices(row, utils.OnIndices(values))
}

//Replaces row with true values at specified indices
func (sm *SparseBinaryMatrix) ReplaceRowByIndices(row int, indices []int) {
	sm.validateRow(row)
	if len(indices) == 0 {
		delete(sm.rows, row)
		return
	}
	newRow := make(SparseRow, len(indices))
	copy(newRow, indices)
	sort.Ints(newRow)
	sm.rows[row] = newRow
}

//Returns a rows "on" indices
func (sm *SparseBinaryMatrix) GetRowIndices(row int) []int {
	sm.validateRow(row)
	result := make([]int, len(sm.rows[row]))
	copy(result, sm.rows[row])
	return result
}

//Returns dense row
func (sm *SparseBinaryMatrix) GetDenseRow(row int) []bool {
	sm.validateRow(row)
	result := make([]bool, sm.Width)
	for _, col := range sm.rows[row] {
		result[col] = true
	}
	return result
}

//In a normal matrix this would be multiplication in binary terms
//we just and then sum the true entries per row
func (sm *SparseBinaryMatrix) RowAndSum(input []bool) []int {
	if len(input) != sm.Width {
		panic("Specified vector width does not match matrix.")
	}
	result := make([]int, sm.Height)
	for rowIdx, row := range sm.rows {
		for _, col := range row {
			if input[col] {
				result[rowIdx]++
			}
		}
	}
	return result
}

//Returns total true entries
func (sm *SparseBinaryMatrix) TotalNonZeroCount() int {
	count := 0
	for _, row := range sm.rows {
		count += len(row)
	}
	return count
}

//Copys a matrix
func (sm *SparseBinaryMatrix) Copy() *SparseBinaryMatrix {
	if sm == nil {
		return nil
	}
	result := NewSparseBinaryMatrix(sm.Height, sm.Width)
	for rowIdx, row := range sm.rows {
		newRow := make(SparseRow, len(row))
		copy(newRow, row)
		result.rows[rowIdx] = newRow
	}
	return result
}

func (sm *SparseBinaryMatrix) ToString() string {
	var buffer bytes.Buffer

	for r := 0; r < sm.Height; r++ {
		row := sm.GetDenseRow(r)
		for c := 0; c < sm.Width; c++ {
			if row[c] {
				buffer.WriteByte('1')
			} else {
				buffer.WriteByte('0')
			}
		}
		buffer.WriteByte('\n')
	}

	return buffer.String()
}
