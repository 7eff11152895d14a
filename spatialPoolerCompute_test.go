package htm

import (
	"math/rand"
	"testing"

	"github.com/htm-community/spatialpooler/utils"
	"github.com/zacg/testify/assert"
)

//Returns an input vector with exactly numOn deterministic on bits
func randomInput(numInputs, numOn int, rng *rand.Rand) []bool {
	input := make([]bool, numInputs)
	for _, idx := range rng.Perm(numInputs)[:numOn] {
		input[idx] = true
	}
	return input
}

func basicComputeLoop(t *testing.T, spParams SpParams) {
	/*
		 Feed in some vectors and retrieve outputs. Ensure the right number of
		columns win, that we always get binary outputs, and that nothing crashes.
	*/

	sp := NewSpatialPooler(spParams)

	numRecords := 100
	rng := rand.New(rand.NewSource(99))

	inputMatrix := make([][]bool, numRecords)
	for i := range inputMatrix {
		inputMatrix[i] = randomInput(sp.numInputs, sp.numInputs/5, rng)
	}

	// With learning off and no prior training we should get no winners
	y := make([]bool, sp.numColumns)
	for _, input := range inputMatrix {
		utils.FillSliceBool(y, false)
		sp.Compute(input, false, y, true)
		assert.Equal(t, 0, utils.CountTrue(y))
	}

	// With learning on we should get the requested number of winners
	for _, input := range inputMatrix {
		utils.FillSliceBool(y, false)
		sp.Compute(input, true, y, false)
		assert.Equal(t, sp.NumActiveColumnsPerInhArea, utils.CountTrue(y))
	}

	// With learning off and some prior training we should get the requested
	// number of winners
	for _, input := range inputMatrix {
		utils.FillSliceBool(y, false)
		sp.Compute(input, false, y, false)
		assert.Equal(t, sp.NumActiveColumnsPerInhArea, utils.CountTrue(y))
	}
}

func TestBasicCompute1(t *testing.T) {

	spParams := NewSpParams()
	spParams.InputDimensions = []int{30}
	spParams.ColumnDimensions = []int{50}
	spParams.GlobalInhibition = true

	basicComputeLoop(t, spParams)
}

func TestBasicCompute2(t *testing.T) {

	spParams := NewSpParams()
	spParams.InputDimensions = []int{100}
	spParams.ColumnDimensions = []int{100}
	spParams.GlobalInhibition = true
	spParams.SynPermActiveInc = 0
	spParams.SynPermInactiveDec = 0

	basicComputeLoop(t, spParams)
}

//A fully lit input activates exactly the requested share of columns
func TestComputeAllOnesInput(t *testing.T) {
	spParams := NewSpParams()
	spParams.InputDimensions = []int{32}
	spParams.ColumnDimensions = []int{16}
	spParams.PotentialRadius = 16
	spParams.PotentialPct = 0.5
	spParams.GlobalInhibition = true
	spParams.NumActiveColumnsPerInhArea = 3
	spParams.SynPermConnected = 0.1
	spParams.Seed = 42

	sp := NewSpatialPooler(spParams)

	input := make([]bool, sp.numInputs)
	utils.FillSliceBool(input, true)
	y := make([]bool, sp.numColumns)

	sp.Compute(input, false, y, false)

	assert.Equal(t, 3, utils.CountTrue(y))
	overlaps := sp.calculateOverlap(input)
	for _, col := range utils.OnIndices(y) {
		assert.True(t, overlaps[col] >= sp.StimulusThreshold,
			"winner overlap below stimulus threshold")
	}
}

//An all zero input produces an all zero SDR, learning or not
func TestComputeZeroInput(t *testing.T) {
	spParams := NewSpParams()
	spParams.InputDimensions = []int{32}
	spParams.ColumnDimensions = []int{16}
	spParams.PotentialRadius = 16
	spParams.PotentialPct = 0.5
	spParams.GlobalInhibition = true
	spParams.NumActiveColumnsPerInhArea = 3
	spParams.Seed = 42

	sp := NewSpatialPooler(spParams)

	input := make([]bool, sp.numInputs)
	y := make([]bool, sp.numColumns)

	sp.Compute(input, false, y, false)
	assert.Equal(t, 0, utils.CountTrue(y))

	sp.Compute(input, true, y, false)
	assert.Equal(t, 0, utils.CountTrue(y))
}

//Identically seeded poolers driven identically stay in lock step
func TestComputeDeterminism(t *testing.T) {
	newPooler := func() *SpatialPooler {
		spParams := NewSpParams()
		spParams.InputDimensions = []int{40}
		spParams.ColumnDimensions = []int{30}
		spParams.GlobalInhibition = true
		spParams.NumActiveColumnsPerInhArea = 5
		spParams.Seed = 42
		return NewSpatialPooler(spParams)
	}

	sp1 := newPooler()
	sp2 := newPooler()

	for i := 0; i < sp1.numColumns; i++ {
		assert.Equal(t, sp1.PotentialPool(i), sp2.PotentialPool(i))
		assert.Equal(t, sp1.ConnectedIndices(i), sp2.ConnectedIndices(i))
	}

	rng := rand.New(rand.NewSource(7))
	y1 := make([]bool, sp1.numColumns)
	y2 := make([]bool, sp2.numColumns)
	for i := 0; i < 50; i++ {
		input := randomInput(sp1.numInputs, 8, rng)
		sp1.Compute(input, true, y1, false)
		sp2.Compute(input, true, y2, false)
		assert.Equal(t, y1, y2)
	}
}

//Sequential and parallel wiring build bit for bit the same pooler
func TestParallelInitMatchesSequential(t *testing.T) {
	params := func(parallel bool) SpParams {
		spParams := NewSpParams()
		spParams.InputDimensions = []int{64}
		spParams.ColumnDimensions = []int{32}
		spParams.GlobalInhibition = true
		spParams.Seed = 42
		spParams.ParallelInit = parallel
		spParams.ParallelWorkers = 8
		return spParams
	}

	seq := NewSpatialPooler(params(false))
	par := NewSpatialPooler(params(true))

	for i := 0; i < seq.numColumns; i++ {
		assert.Equal(t, seq.PotentialPool(i), par.PotentialPool(i))
		assert.Equal(t, seq.Permanences(i), par.Permanences(i))
		assert.Equal(t, seq.ConnectedIndices(i), par.ConnectedIndices(i))
	}
	assert.Equal(t, seq.InhibitionRadius(), par.InhibitionRadius())
}

//Non learning compute is repeatable and leaves learned state untouched
func TestComputeIdempotentWithoutLearning(t *testing.T) {
	spParams := NewSpParams()
	spParams.InputDimensions = []int{40}
	spParams.ColumnDimensions = []int{40}
	spParams.GlobalInhibition = true
	spParams.NumActiveColumnsPerInhArea = 4
	spParams.Seed = 42

	sp := NewSpatialPooler(spParams)

	rng := rand.New(rand.NewSource(13))
	y := make([]bool, sp.numColumns)
	for i := 0; i < 20; i++ {
		sp.Compute(randomInput(sp.numInputs, 8, rng), true, y, false)
	}

	input := randomInput(sp.numInputs, 8, rng)

	permsBefore := make([][]float64, sp.numColumns)
	for i := range permsBefore {
		permsBefore[i] = sp.Permanences(i)
	}
	activeDutyBefore := sp.ActiveDutyCycles()
	overlapDutyBefore := sp.OverlapDutyCycles()
	iterBefore := sp.IterationNum

	y1 := make([]bool, sp.numColumns)
	y2 := make([]bool, sp.numColumns)
	sp.Compute(input, false, y1, false)
	sp.Compute(input, false, y2, false)

	assert.Equal(t, y1, y2)
	assert.Equal(t, iterBefore+2, sp.IterationNum)
	assert.Equal(t, activeDutyBefore, sp.ActiveDutyCycles())
	assert.Equal(t, overlapDutyBefore, sp.OverlapDutyCycles())
	for i := range permsBefore {
		assert.Equal(t, permsBefore[i], sp.Permanences(i))
	}
}

//A repeated input settles on a stable set of winners
func TestLearningConvergence(t *testing.T) {
	spParams := NewSpParams()
	spParams.InputDimensions = []int{50}
	spParams.ColumnDimensions = []int{50}
	spParams.GlobalInhibition = true
	spParams.NumActiveColumnsPerInhArea = 3
	spParams.MinPctOverlapDutyCycles = 0
	spParams.MinPctActiveDutyCycles = 0
	spParams.Seed = 42

	sp := NewSpatialPooler(spParams)

	rng := rand.New(rand.NewSource(21))
	input := randomInput(sp.numInputs, 20, rng)
	y := make([]bool, sp.numColumns)

	var reference []int
	for i := 1; i <= 200; i++ {
		sp.Compute(input, true, y, false)
		winners := utils.OnIndices(y)

		// Sparsity invariant holds every step
		assert.True(t, len(winners) <= 4, "too many winners")

		if i == 100 {
			reference = winners
		}
		if i >= 100 {
			assert.Equal(t, reference, winners, "winners changed after convergence")
		}
	}
	assert.Equal(t, 3, len(reference))
}

func TestOverlapsPct(t *testing.T) {
	sp := testPooler(2, 4)
	sp.potentialPools.ReplaceRowByIndices(0, []int{0, 1, 2, 3})
	sp.updatePermanencesForColumn([]float64{0.5, 0.5, 0.5, 0.5}, 0, false)

	input := utils.Make1DBool([]int{1, 1, 0, 0})
	overlaps := sp.calculateOverlap(input)
	pcts := sp.OverlapsPct(overlaps)

	assert.Equal(t, 2, overlaps[0])
	assert.Equal(t, 0.5, pcts[0])
	// A column with no connected synapses has zero overlap pct
	assert.Equal(t, 0.0, pcts[1])
}
