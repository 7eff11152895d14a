package htm

import (
	"math"

	"github.com/cznic/mathutil"
	"github.com/gonum/floats"
	"github.com/htm-community/spatialpooler/utils"
)

/*
 The primary learning method. Active synapses (those landing on an on
input bit) of winning columns are strengthened, inactive ones weakened.
Only synapses within a column's potential pool move; the result is
reinstalled with the stimulus threshold raise applied.
*/
func (sp *SpatialPooler) adaptSynapses(inputVector []bool, activeColumns []int) {
	permChanges := utils.MakeSliceFloat64(sp.numInputs, -sp.SynPermInactiveDec)
	for i, val := range inputVector {
		if val {
			permChanges[i] = sp.SynPermActiveInc
		}
	}

	for _, columnIndex := range activeColumns {
		perm := sp.Permanences(columnIndex)
		for _, j := range sp.potentialPools.GetRowIndices(columnIndex) {
			perm[j] += permChanges[j]
		}
		sp.updatePermanencesForColumn(perm, columnIndex, true)
	}
}

/*
 This method increases the permanence values of synapses of columns whose
overlap duty cycle is below their minimum. Such columns are not competing
successfully for input and get their whole pool nudged toward
connectedness.
*/
func (sp *SpatialPooler) bumpUpWeakColumns() {
	for i := 0; i < sp.numColumns; i++ {
		if sp.overlapDutyCycles[i] >= sp.minOverlapDutyCycles[i] {
			continue
		}
		perm := sp.Permanences(i)
		for _, j := range sp.potentialPools.GetRowIndices(i) {
			perm[j] += sp.SynPermBelowStimulusInc
		}
		sp.updatePermanencesForColumn(perm, i, false)
	}
}

/*
 Updates the duty cycles for each column. The overlap duty cycle is a
moving average of how often each column had a non-zero overlap;
the activity duty cycles is a moving average of the frequency of
activation for each column. The period is capped by the iteration count,
so the very first update (iteration 1) is an exact average.
*/
func (sp *SpatialPooler) updateDutyCycles(overlaps []int, activeColumns []int) {
	overlapArray := make([]float64, sp.numColumns)
	activeArray := make([]float64, sp.numColumns)
	for i, val := range overlaps {
		if val != 0 {
			overlapArray[i] = 1
		}
	}
	for _, col := range activeColumns {
		activeArray[col] = 1
	}

	period := mathutil.Min(sp.DutyCyclePeriod, sp.IterationNum)
	period = mathutil.Max(period, 1)

	sp.overlapDutyCycles = updateDutyCyclesHelper(sp.overlapDutyCycles, overlapArray, period)
	sp.activeDutyCycles = updateDutyCyclesHelper(sp.activeDutyCycles, activeArray, period)
}

//Exponential moving average with the specified period
func updateDutyCyclesHelper(dutyCycles []float64, newInput []float64, period int) []float64 {
	result := make([]float64, len(dutyCycles))
	for i := range dutyCycles {
		result[i] = (dutyCycles[i]*float64(period-1) + newInput[i]) / float64(period)
	}
	return result
}

// Updates the minimum duty cycles defining normal activity for a column. A
// column with activity duty cycle below this minimum threshold is boosted.
func (sp *SpatialPooler) updateMinDutyCycles() {
	if sp.GlobalInhibition || sp.inhibitionRadius > sp.numInputs {
		sp.updateMinDutyCyclesGlobal()
	} else {
		sp.updateMinDutyCyclesLocal()
	}
}

// Updates the minimum duty cycles in a global fashion. Sets the minimum duty
// cycles for the overlap and activation of all columns to be a percent of the
// maximum in the region, specified by minPctOverlapDutyCycles and
// minPctActiveDutyCycles respectively. Functionally it is equivalent to
// updateMinDutyCyclesLocal, but this function exploits the globality of the
// computation to perform it in a straightforward and more efficient manner.
func (sp *SpatialPooler) updateMinDutyCyclesGlobal() {
	utils.FillSliceFloat64(sp.minOverlapDutyCycles,
		sp.MinPctOverlapDutyCycles*floats.Max(sp.overlapDutyCycles))
	utils.FillSliceFloat64(sp.minActiveDutyCycles,
		sp.MinPctActiveDutyCycles*floats.Max(sp.activeDutyCycles))
}

// Updates the minimum duty cycles per column: each column's minimum is a
// percent of the maximum duty cycle found in its neighborhood (the column
// itself included, wrapping around the topology).
func (sp *SpatialPooler) updateMinDutyCyclesLocal() {
	for i := 0; i < sp.numColumns; i++ {
		maskNeighbors := NeighborsND(i, sp.inhibitionRadius, sp.ColumnDimensions, true)
		maskNeighbors = append(maskNeighbors, i)
		sp.minOverlapDutyCycles[i] = sp.MinPctOverlapDutyCycles *
			floats.Max(utils.SubsetSliceFloat64(sp.overlapDutyCycles, maskNeighbors))
		sp.minActiveDutyCycles[i] = sp.MinPctActiveDutyCycles *
			floats.Max(utils.SubsetSliceFloat64(sp.activeDutyCycles, maskNeighbors))
	}
}

/*
 Update the boost factors for all columns. Columns active often enough
(active duty cycle above their minimum) get a factor of 1. The rest are
boosted linearly up to maxBoost as their activity approaches zero:

	boost = (1 - maxBoost) / minDuty * activeDuty + maxBoost

When the minimum duty cycle vector is all zero (before the first refresh)
boost factors are left untouched.
*/
func (sp *SpatialPooler) updateBoostFactors() {
	anyPositive := false
	for _, val := range sp.minActiveDutyCycles {
		if val > 0 {
			anyPositive = true
			break
		}
	}
	if !anyPositive {
		return
	}

	for i := 0; i < sp.numColumns; i++ {
		if sp.minActiveDutyCycles[i] <= 0 {
			continue
		}
		if sp.activeDutyCycles[i] > sp.minActiveDutyCycles[i] {
			sp.boostFactors[i] = 1.0
			continue
		}
		sp.boostFactors[i] = ((1.0-sp.MaxBoost)/sp.minActiveDutyCycles[i])*
			sp.activeDutyCycles[i] + sp.MaxBoost
	}
}

/*
 Update the inhibition radius, the measure of the cortical distance within
which columns compete. With global inhibition it covers the whole region;
otherwise it is derived from the average span of connected synapses per
column, converted into column coordinates.
*/
func (sp *SpatialPooler) updateInhibitionRadius() {
	if sp.GlobalInhibition {
		sp.inhibitionRadius = utils.MaxSliceInt(sp.ColumnDimensions)
		return
	}

	avgConnectedSpan := 0.0
	for i := 0; i < sp.numColumns; i++ {
		avgConnectedSpan += sp.avgConnectedSpanForColumnND(i)
	}
	avgConnectedSpan /= float64(sp.numColumns)

	diameter := avgConnectedSpan * sp.avgColumnsPerInput()
	radius := math.Round((diameter - 1.0) / 2.0)
	sp.inhibitionRadius = mathutil.Max(1, int(radius))
}

//Mean ratio of column count to input count across dimensions
func (sp *SpatialPooler) avgColumnsPerInput() float64 {
	result := 0.0
	for i := range sp.ColumnDimensions {
		result += float64(sp.ColumnDimensions[i]) / float64(sp.InputDimensions[i])
	}
	return result / float64(len(sp.ColumnDimensions))
}

/*
 The average coordinate span of a column's connected synapses in input
space, averaged over dimensions. Columns with no connected synapses
span nothing.
*/
func (sp *SpatialPooler) avgConnectedSpanForColumnND(columnIndex int) float64 {
	connected := sp.connectedSynapses.GetRowIndices(columnIndex)
	if len(connected) == 0 {
		return 0
	}

	ndims := len(sp.InputDimensions)
	maxCoord := utils.MakeSliceInt(ndims, -1)
	minCoord := make([]int, ndims)
	for i, dim := range sp.InputDimensions {
		minCoord[i] = dim
	}

	for _, idx := range connected {
		coords := ComputeCoordinates(idx, sp.InputDimensions)
		maxCoord = utils.MaxInt(maxCoord, coords)
		minCoord = utils.MinInt(minCoord, coords)
	}

	span := 0.0
	for d := 0; d < ndims; d++ {
		span += float64(maxCoord[d] - minCoord[d] + 1)
	}
	return span / float64(ndims)
}
