package htm

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/gonum/floats"
	"github.com/htm-community/spatialpooler/utils"
	"github.com/skelterjohn/go.matrix"
)

//Allocates the connectivity matrices and per column state
func (sp *SpatialPooler) initMatrices() {
	elms := make(map[int]float64)
	sp.permanences = matrix.MakeSparseMatrix(elms, sp.numColumns, sp.numInputs)
	sp.potentialPools = NewDenseBinaryMatrix(sp.numColumns, sp.numInputs)
	sp.connectedSynapses = NewSparseBinaryMatrix(sp.numColumns, sp.numInputs)
	sp.connectedCounts = make([]int, sp.numColumns)

	sp.overlapDutyCycles = make([]float64, sp.numColumns)
	sp.activeDutyCycles = make([]float64, sp.numColumns)
	sp.minOverlapDutyCycles = make([]float64, sp.numColumns)
	sp.minActiveDutyCycles = make([]float64, sp.numColumns)
	sp.boostFactors = utils.MakeSliceFloat64(sp.numColumns, 1)

	sp.tieBreaker = make([]float64, sp.numColumns)
	for i := range sp.tieBreaker {
		sp.tieBreaker[i] = 0.01 * sp.random.Float64()
	}
}

/*
 Wires every column to its share of the input space: samples the potential
pool, draws initial permanences and installs them. Each column draws from a
PRNG sub seeded with the master seed plus the column index, so the parallel
path produces bit for bit the same pooler as the sequential one.
*/
func (sp *SpatialPooler) connectAndConfigureInputs() {
	pools := make([][]int, sp.numColumns)
	perms := make([][]float64, sp.numColumns)

	wire := func(i int) {
		columnRand := rand.New(rand.NewSource(sp.seed + int64(i) + 1))
		pools[i] = sp.mapPotentialWithRand(i, true, columnRand)
		mask := make([]bool, sp.numInputs)
		for _, idx := range pools[i] {
			mask[idx] = true
		}
		perms[i] = sp.initPermanenceWithRand(mask, sp.InitConnectedPct, columnRand)
	}

	if sp.parallelInit {
		limit := sp.parallelWorkers
		if limit <= 0 {
			limit = 1
		}
		sem := make(chan struct{}, limit)
		var wg sync.WaitGroup
		wg.Add(sp.numColumns)
		for i := 0; i < sp.numColumns; i++ {
			sem <- struct{}{}
			go func(i int) {
				defer wg.Done()
				defer func() { <-sem }()
				wire(i)
			}(i)
		}
		wg.Wait()
	} else {
		for i := 0; i < sp.numColumns; i++ {
			wire(i)
		}
	}

	// Shared matrices are only touched from here, in column order
	for i := 0; i < sp.numColumns; i++ {
		sp.potentialPools.ReplaceRowByIndices(i, pools[i])
		sp.updatePermanencesForColumn(perms[i], i, true)
	}

	sp.updateInhibitionRadius()
}

/*
 Returns the input index acting as the center of the specified column:
the column coordinate ratio scaled into input space plus a half step
offset, clipped to the input dimensions.
*/
func (sp *SpatialPooler) mapColumn(columnIndex int) int {
	columnCoords := ComputeCoordinates(columnIndex, sp.ColumnDimensions)
	inputCoords := make([]int, len(columnCoords))
	for i, coord := range columnCoords {
		ratio := float64(sp.InputDimensions[i]) / float64(sp.ColumnDimensions[i])
		inputCoord := int((float64(coord) + 0.5) * ratio)
		if inputCoord > sp.InputDimensions[i]-1 {
			inputCoord = sp.InputDimensions[i] - 1
		}
		if inputCoord < 0 {
			inputCoord = 0
		}
		inputCoords[i] = inputCoord
	}
	return ComputeIndex(inputCoords, sp.InputDimensions)
}

/*
 Maps a column to its potential pool: the inputs within potentialRadius
of the column's center (the center included), thinned down to
round(count * potentialPct) samples drawn without replacement. Returned
indices are sorted and unique.
*/
func (sp *SpatialPooler) mapPotential(columnIndex int, wrapAround bool) []int {
	return sp.mapPotentialWithRand(columnIndex, wrapAround, sp.random)
}

func (sp *SpatialPooler) mapPotentialWithRand(columnIndex int, wrapAround bool, rng *rand.Rand) []int {
	centerInput := sp.mapColumn(columnIndex)

	columnInputs := NeighborsND(centerInput, sp.PotentialRadius, sp.InputDimensions, wrapAround)
	columnInputs = append(columnInputs, centerInput)
	sort.Ints(columnInputs)

	// Rounding is half away from zero
	numPotential := int(math.Round(float64(len(columnInputs)) * sp.PotentialPct))

	sample := make([]int, numPotential)
	for i, idx := range rng.Perm(len(columnInputs))[:numPotential] {
		sample[i] = columnInputs[idx]
	}
	sort.Ints(sample)
	return sample
}

/*
 Draws the initial permanence vector for a column. potential is the dense
pool mask. round(poolSize * connectedPct) pool entries start connected with
a permanence slightly above the connected threshold, the rest start below
it. Values are truncated to five decimals to keep the connected bit mask
reproducible across platforms, then trimmed.
*/
func (sp *SpatialPooler) initPermanence(potential []bool, connectedPct float64) []float64 {
	return sp.initPermanenceWithRand(potential, connectedPct, sp.random)
}

func (sp *SpatialPooler) initPermanenceWithRand(potential []bool, connectedPct float64, rng *rand.Rand) []float64 {
	perm := make([]float64, sp.numInputs)
	pool := utils.OnIndices(potential)

	numConnected := int(math.Round(float64(len(pool)) * connectedPct))
	connected := make([]bool, len(pool))
	for _, idx := range rng.Perm(len(pool))[:numConnected] {
		connected[idx] = true
	}

	for i, j := range pool {
		var p float64
		if connected[i] {
			p = sp.SynPermConnected + rng.Float64()*sp.SynPermActiveInc/4.0
		} else {
			p = sp.SynPermConnected * rng.Float64()
		}
		p = math.Floor(p*100000.0) / 100000.0
		if p <= sp.SynPermTrimThreshold {
			p = 0
		}
		perm[j] = p
	}
	return perm
}

/*
 Keeps bumping every entry of the dense permanence vector by
synPermBelowStimulusInc until the column has at least stimulusThreshold
connected synapses within its pool mask. Bumping all entries rather than
the masked ones reproduces the historical behavior this lineage depends
on for step for step reproducibility.
*/
func (sp *SpatialPooler) raisePermanenceToThreshold(perm []float64, maskPotential []int) {
	if len(maskPotential) < sp.StimulusThreshold {
		panic(fmt.Sprintf("Potential pool of %v synapses can never reach stimulus threshold %v",
			len(maskPotential), sp.StimulusThreshold))
	}
	for i := range perm {
		if perm[i] < sp.SynPermMin {
			perm[i] = sp.SynPermMin
		}
		if perm[i] > sp.SynPermMax {
			perm[i] = sp.SynPermMax
		}
	}
	for {
		numConnected := 0
		for _, idx := range maskPotential {
			if perm[idx] >= sp.SynPermConnected {
				numConnected++
			}
		}
		if numConnected >= sp.StimulusThreshold {
			return
		}
		floats.AddConst(sp.SynPermBelowStimulusInc, perm)
	}
}

/*
 Installs a dense permanence vector into the specified column: optionally
raises it to the stimulus threshold, trims values at or below the trim
threshold to zero, clips the rest into [min,max], stores the row and
refreshes the column's connected bit mask and connected count.
*/
func (sp *SpatialPooler) updatePermanencesForColumn(perm []float64, columnIndex int, raisePerm bool) {
	if len(perm) != sp.numInputs {
		panic("Permanence vector length does not match input count")
	}

	if raisePerm {
		maskPotential := sp.potentialPools.GetRowIndices(columnIndex)
		sp.raisePermanenceToThreshold(perm, maskPotential)
	}

	var newConnected []int
	for j := 0; j < sp.numInputs; j++ {
		if perm[j] <= sp.SynPermTrimThreshold {
			perm[j] = 0
		} else {
			if perm[j] < sp.SynPermMin {
				perm[j] = sp.SynPermMin
			}
			if perm[j] > sp.SynPermMax {
				perm[j] = sp.SynPermMax
			}
		}
		sp.permanences.Set(columnIndex, j, perm[j])
		if perm[j] >= sp.SynPermConnected {
			newConnected = append(newConnected, j)
		}
	}

	sp.connectedSynapses.ReplaceRowByIndices(columnIndex, newConnected)
	sp.connectedCounts[columnIndex] = len(newConnected)
}
