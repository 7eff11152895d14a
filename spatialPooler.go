package htm

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/gonum/floats"
	"github.com/htm-community/spatialpooler/utils"
	"github.com/skelterjohn/go.matrix"
)

type SpatialPooler struct {
	numInputs                  int
	numColumns                 int
	ColumnDimensions           []int
	InputDimensions            []int
	PotentialRadius            int
	PotentialPct               float64
	GlobalInhibition           bool
	NumActiveColumnsPerInhArea int
	LocalAreaDensity           float64
	StimulusThreshold          int
	SynPermInactiveDec         float64
	SynPermActiveInc           float64
	SynPermBelowStimulusInc    float64
	SynPermConnected           float64
	MinPctOverlapDutyCycles    float64
	MinPctActiveDutyCycles     float64
	DutyCyclePeriod            int
	MaxBoost                   float64
	SpVerbosity                int

	// Extra parameter settings
	SynPermMin           float64
	SynPermMax           float64
	SynPermTrimThreshold float64
	UpdatePeriod         int
	InitConnectedPct     float64

	// Internal state
	Version           float64
	IterationNum      int
	IterationLearnNum int

	seed            int64
	random          *rand.Rand
	parallelInit    bool
	parallelWorkers int

	potentialPools    *DenseBinaryMatrix
	permanences       *matrix.SparseMatrix
	connectedSynapses *SparseBinaryMatrix
	connectedCounts   []int

	overlapDutyCycles    []float64
	activeDutyCycles     []float64
	minOverlapDutyCycles []float64
	minActiveDutyCycles  []float64
	boostFactors         []float64
	tieBreaker           []float64

	inhibitionRadius int
}

//Creates a new spatial pooler from the specified params. Panics on a
//configuration error; use SpParams.Validate to pre-check without a panic.
func NewSpatialPooler(spParams SpParams) *SpatialPooler {
	if err := spParams.Validate(); err != nil {
		panic(err)
	}

	sp := SpatialPooler{}
	sp.numInputs = utils.ProdInt(spParams.InputDimensions)
	sp.numColumns = utils.ProdInt(spParams.ColumnDimensions)
	sp.InputDimensions = append([]int(nil), spParams.InputDimensions...)
	sp.ColumnDimensions = append([]int(nil), spParams.ColumnDimensions...)
	if spParams.PotentialRadius < sp.numInputs {
		sp.PotentialRadius = spParams.PotentialRadius
	} else {
		sp.PotentialRadius = sp.numInputs
	}
	sp.PotentialPct = spParams.PotentialPct
	sp.GlobalInhibition = spParams.GlobalInhibition
	sp.NumActiveColumnsPerInhArea = spParams.NumActiveColumnsPerInhArea
	sp.LocalAreaDensity = spParams.LocalAreaDensity
	sp.StimulusThreshold = spParams.StimulusThreshold
	sp.SynPermInactiveDec = spParams.SynPermInactiveDec
	sp.SynPermActiveInc = spParams.SynPermActiveInc
	sp.SynPermBelowStimulusInc = spParams.SynPermBelowStimulusInc
	sp.SynPermConnected = spParams.SynPermConnected
	sp.MinPctOverlapDutyCycles = spParams.MinPctOverlapDutyCycles
	sp.MinPctActiveDutyCycles = spParams.MinPctActiveDutyCycles
	sp.DutyCyclePeriod = spParams.DutyCyclePeriod
	sp.MaxBoost = spParams.MaxBoost
	sp.SpVerbosity = spParams.SpVerbosity

	sp.SynPermMin = spParams.SynPermMin
	sp.SynPermMax = spParams.SynPermMax
	sp.SynPermTrimThreshold = spParams.SynPermTrimThreshold
	sp.UpdatePeriod = spParams.UpdatePeriod
	sp.InitConnectedPct = spParams.InitConnectedPct

	sp.Version = 1.0
	sp.IterationNum = 0
	sp.IterationLearnNum = 0

	sp.seed = spParams.Seed
	sp.random = rand.New(rand.NewSource(spParams.Seed))
	sp.parallelInit = spParams.ParallelInit
	sp.parallelWorkers = spParams.ParallelWorkers

	sp.initMatrices()
	sp.connectAndConfigureInputs()

	if sp.SpVerbosity > 0 {
		fmt.Printf("Initialized spatial pooler: %v columns %v inputs \n",
			sp.numColumns, sp.numInputs)
	}

	return &sp
}

//Main func, drives a single step of the pooler. Writes the resulting
//SDR into activeArray which must be numColumns long. With learn off,
//stripNeverLearned optionally removes columns that have never won.
func (sp *SpatialPooler) Compute(inputVector []bool, learn bool, activeArray []bool, stripNeverLearned bool) {
	if len(inputVector) != sp.numInputs {
		panic(fmt.Sprintf("Input vector length %v does not match input count %v",
			len(inputVector), sp.numInputs))
	}
	if len(activeArray) != sp.numColumns {
		panic(fmt.Sprintf("Active array length %v does not match column count %v",
			len(activeArray), sp.numColumns))
	}

	sp.updateBookeepingVars(learn)

	overlaps := sp.calculateOverlap(inputVector)

	// Apply boosting when learning is on
	boostedOverlaps := make([]float64, sp.numColumns)
	for i, val := range overlaps {
		if learn {
			boostedOverlaps[i] = float64(val) * sp.boostFactors[i]
		} else {
			boostedOverlaps[i] = float64(val)
		}
	}

	// Apply inhibition to determine the winning columns
	activeColumns := sp.InhibitColumns(boostedOverlaps)

	if learn {
		sp.adaptSynapses(inputVector, activeColumns)
		sp.updateDutyCycles(overlaps, activeColumns)
		sp.bumpUpWeakColumns()
		sp.updateBoostFactors()
		if sp.isUpdateRound() {
			sp.updateInhibitionRadius()
			sp.updateMinDutyCycles()
		}
	} else if stripNeverLearned {
		activeColumns = sp.stripNeverLearned(activeColumns)
	}

	utils.FillSliceBool(activeArray, false)
	for _, col := range activeColumns {
		activeArray[col] = true
	}
}

func (sp *SpatialPooler) updateBookeepingVars(learn bool) {
	sp.IterationNum++
	if learn {
		sp.IterationLearnNum++
	}
}

//Returns the raw overlap of every column with the input vector: the
//count of connected synapses landing on an on bit. Counts below the
//stimulus threshold are zeroed.
func (sp *SpatialPooler) calculateOverlap(inputVector []bool) []int {
	overlaps := sp.connectedSynapses.RowAndSum(inputVector)
	for i, val := range overlaps {
		if val < sp.StimulusThreshold {
			overlaps[i] = 0
		}
	}
	return overlaps
}

//Returns overlaps normalized by each column's connected synapse count
func (sp *SpatialPooler) OverlapsPct(overlaps []int) []float64 {
	result := make([]float64, len(overlaps))
	for i, val := range overlaps {
		if sp.connectedCounts[i] != 0 {
			result[i] = float64(val) / float64(sp.connectedCounts[i])
		}
	}
	return result
}

/*
 Performs inhibition. This method slices the overlap scores into groups
of columns sized by the inhibition radius and selects the winners of each
group. Which columns are considered neighbors depends on the topology;
with global inhibition the whole region is one group.
*/
func (sp *SpatialPooler) InhibitColumns(overlaps []float64) []int {
	if len(overlaps) != sp.numColumns {
		panic("Overlaps length does not match column count")
	}

	work := make([]float64, len(overlaps))
	copy(work, overlaps)

	density := sp.LocalAreaDensity
	if density <= 0 {
		inhibitionArea := math.Pow(float64(2*sp.inhibitionRadius+1), float64(len(sp.ColumnDimensions)))
		inhibitionArea = math.Min(float64(sp.numColumns), inhibitionArea)
		density = float64(sp.NumActiveColumnsPerInhArea) / inhibitionArea
		density = math.Min(density, 0.5)
	}

	// Tiny per-column noise makes exact ties impossible
	floats.Add(work, sp.tieBreaker)

	if sp.GlobalInhibition || sp.inhibitionRadius > utils.MaxSliceInt(sp.ColumnDimensions) {
		return sp.inhibitColumnsGlobal(work, density)
	}
	return sp.inhibitColumnsLocal(work, density)
}

/*
 Perform global inhibition: the top floor(density * numColumns) columns
by overlap win, region wide. A column whose overlap carries nothing but
tie breaker noise can never become active.
*/
func (sp *SpatialPooler) inhibitColumnsGlobal(overlaps []float64, density float64) []int {
	numActive := int(density * float64(sp.numColumns))

	indices := make([]int, sp.numColumns)
	utils.FillSliceWithIdxInt(indices)
	sort.Slice(indices, func(i, j int) bool {
		a, b := indices[i], indices[j]
		if overlaps[a] == overlaps[b] {
			return a < b
		}
		return overlaps[a] > overlaps[b]
	})

	winners := make([]int, 0, numActive)
	for _, idx := range indices {
		if len(winners) >= numActive || overlaps[idx] < 1 {
			break
		}
		winners = append(winners, idx)
	}
	sort.Ints(winners)
	return winners
}

/*
 Perform local inhibition. A column wins when fewer than
round(density * (neighborhood size)) of its neighbors beat its overlap.
Winners get a tiny bump so that columns evaluated later see the already
selected ones as slightly stronger; column order is therefore ascending
and must stay that way.
*/
func (sp *SpatialPooler) inhibitColumnsLocal(overlaps []float64, density float64) []int {
	var winners []int
	addToWinners := floats.Max(overlaps) / 1000.0

	for i := 0; i < sp.numColumns; i++ {
		if overlaps[i] < 1 {
			continue
		}
		maskNeighbors := NeighborsND(i, sp.inhibitionRadius, sp.ColumnDimensions, false)
		numActive := int(0.5 + density*float64(len(maskNeighbors)+1))
		numBigger := 0
		for _, neighbor := range maskNeighbors {
			if overlaps[neighbor] > overlaps[i] {
				numBigger++
			}
		}
		if numBigger < numActive {
			winners = append(winners, i)
			overlaps[i] += addToWinners
		}
	}
	return winners
}

//Removes columns that have never been active during learning
func (sp *SpatialPooler) stripNeverLearned(activeColumns []int) []int {
	result := make([]int, 0, len(activeColumns))
	for _, col := range activeColumns {
		if sp.activeDutyCycles[col] > 0 {
			result = append(result, col)
		}
	}
	return result
}

func (sp *SpatialPooler) isUpdateRound() bool {
	return sp.IterationNum%sp.UpdatePeriod == 0
}

//------------------ Accessors ------------------

func (sp *SpatialPooler) NumColumns() int {
	return sp.numColumns
}

func (sp *SpatialPooler) NumInputs() int {
	return sp.numInputs
}

func (sp *SpatialPooler) InhibitionRadius() int {
	return sp.inhibitionRadius
}

//Returns the potential pool of the specified column as sorted input indices
func (sp *SpatialPooler) PotentialPool(column int) []int {
	return sp.potentialPools.GetRowIndices(column)
}

//Returns input indices the specified column is currently connected to
func (sp *SpatialPooler) ConnectedIndices(column int) []int {
	return sp.connectedSynapses.GetRowIndices(column)
}

func (sp *SpatialPooler) ConnectedCount(column int) int {
	return sp.connectedCounts[column]
}

func (sp *SpatialPooler) BoostFactor(column int) float64 {
	return sp.boostFactors[column]
}

//Returns the dense permanence vector of the specified column. Entries
//outside the column's potential pool start at zero; the stimulus threshold
//raise bumps every entry, so they can become nonzero once lifted above the
//trim threshold.
func (sp *SpatialPooler) Permanences(column int) []float64 {
	if column < 0 || column >= sp.numColumns {
		panic(fmt.Sprintf("Column %v out of bounds", column))
	}
	perm := make([]float64, sp.numInputs)
	for j := 0; j < sp.numInputs; j++ {
		perm[j] = sp.permanences.Get(column, j)
	}
	return perm
}

func (sp *SpatialPooler) ActiveDutyCycles() []float64 {
	result := make([]float64, len(sp.activeDutyCycles))
	copy(result, sp.activeDutyCycles)
	return result
}

func (sp *SpatialPooler) OverlapDutyCycles() []float64 {
	result := make([]float64, len(sp.overlapDutyCycles))
	copy(result, sp.overlapDutyCycles)
	return result
}
