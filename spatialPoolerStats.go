//
// Code related to spatial pooler stats
//

package htm

import (
	"fmt"

	"github.com/cznic/mathutil"
	"github.com/htm-community/spatialpooler/utils"
	"github.com/zacg/floats"
	"github.com/zacg/go.matrix"
	"github.com/zacg/ints"
)

/*
 SpStats accumulates activation statistics over the SDRs a spatial pooler
produces. It is driven by the caller, one Track call per Compute call;
the pooler itself never touches it.
*/
type SpStats struct {
	NumComputes        int
	TotalActiveColumns int
	AvgSparsity        float64

	// Per column activation counts over the tracked run
	ActivationFrequency *matrix.DenseMatrix

	columnCounts []int
}

func NewSpStats(numColumns int) *SpStats {
	stats := new(SpStats)
	stats.ActivationFrequency = matrix.Zeros(1, numColumns)
	stats.columnCounts = make([]int, numColumns)
	return stats
}

//Records the active array produced by one Compute call
func (s *SpStats) Track(activeArray []bool) {
	if len(activeArray) != len(s.columnCounts) {
		panic("Active array length does not match column count")
	}

	active := utils.OnIndices(activeArray)
	s.NumComputes++
	s.TotalActiveColumns += len(active)

	sparsity := float64(len(active)) / float64(len(activeArray))
	s.AvgSparsity += (sparsity - s.AvgSparsity) / float64(s.NumComputes)

	for _, col := range active {
		s.ActivationFrequency.Set(0, col, s.ActivationFrequency.Get(0, col)+1)
		s.columnCounts[col]++
	}
}

//Returns the n most frequently active columns, most active first
func (s *SpStats) MostActiveColumns(n int) []int {
	counts := make([]int, len(s.columnCounts))
	copy(counts, s.columnCounts)
	inds := make([]int, len(counts))
	ints.Argsort(counts, inds)

	n = mathutil.Min(n, len(inds))
	result := make([]int, n)
	for i := 0; i < n; i++ {
		result[i] = inds[len(inds)-1-i]
	}
	return result
}

func (s *SpStats) ToString() string {
	result := "SpStats: \n"

	result += fmt.Sprintf("numComputes %v \n", s.NumComputes)
	result += fmt.Sprintf("totalActiveColumns %v \n", s.TotalActiveColumns)
	result += fmt.Sprintf("avgSparsity %v \n", s.AvgSparsity)

	counts := s.ActivationFrequency.Array()
	result += fmt.Sprintf("totalActivations %v \n", floats.Sum(counts))
	top := s.MostActiveColumns(10)
	result += fmt.Sprintf("topColumns %v \n", top)
	result += fmt.Sprintf("topColumnActivations %v \n", floats.Sum(floats.SubSet(counts, top)))

	return result
}
