package htm

import (
	"fmt"
)

/*
 SpParams carries every tunable of the spatial pooler. Callers populate one
(usually starting from NewSpParams defaults) and hand it to NewSpatialPooler,
which copies the values it needs. Exactly one of LocalAreaDensity and
NumActiveColumnsPerInhArea must be positive; the inactive one stays at its
<= 0 sentinel.
*/
type SpParams struct {
	InputDimensions            []int
	ColumnDimensions           []int
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
	Seed                       int64
	SpVerbosity                int

	// Extra parameter settings
	SynPermMin           float64
	SynPermMax           float64
	SynPermTrimThreshold float64
	UpdatePeriod         int
	InitConnectedPct     float64

	// Opt-in parallel column wiring. Deterministic either way: each
	// column draws from its own sub seeded PRNG.
	ParallelInit    bool
	ParallelWorkers int
}

//Initializes sp params with default values
func NewSpParams() SpParams {
	sp := SpParams{}
	sp.InputDimensions = []int{32, 32}
	sp.ColumnDimensions = []int{64, 64}
	sp.PotentialRadius = 16
	sp.PotentialPct = 0.5
	sp.GlobalInhibition = false
	sp.NumActiveColumnsPerInhArea = 10
	sp.LocalAreaDensity = -1.0
	sp.StimulusThreshold = 0
	sp.SynPermInactiveDec = 0.01
	sp.SynPermActiveInc = 0.1
	sp.SynPermConnected = 0.1
	sp.MinPctOverlapDutyCycles = 0.001
	sp.MinPctActiveDutyCycles = 0.001
	sp.DutyCyclePeriod = 1000
	sp.MaxBoost = 10.0
	sp.Seed = 42
	sp.SpVerbosity = 0

	sp.SynPermMin = 0.0
	sp.SynPermMax = 1.0
	sp.SynPermTrimThreshold = sp.SynPermActiveInc / 2.0
	sp.SynPermBelowStimulusInc = sp.SynPermConnected / 10.0
	sp.UpdatePeriod = 50
	sp.InitConnectedPct = 0.5

	sp.ParallelInit = false
	sp.ParallelWorkers = 4

	return sp
}

//Checks the parameter bundle for configuration errors
func (sp SpParams) Validate() error {
	if len(sp.InputDimensions) == 0 {
		return fmt.Errorf("input dimensions may not be empty")
	}
	if len(sp.ColumnDimensions) == 0 {
		return fmt.Errorf("column dimensions may not be empty")
	}
	if len(sp.InputDimensions) != len(sp.ColumnDimensions) {
		return fmt.Errorf("input and column dimension ranks differ: %v vs %v",
			len(sp.InputDimensions), len(sp.ColumnDimensions))
	}
	for _, dim := range sp.InputDimensions {
		if dim < 1 {
			return fmt.Errorf("input dimensions must be positive, got %v", sp.InputDimensions)
		}
	}
	for _, dim := range sp.ColumnDimensions {
		if dim < 1 {
			return fmt.Errorf("column dimensions must be positive, got %v", sp.ColumnDimensions)
		}
	}
	if sp.PotentialRadius < 0 {
		return fmt.Errorf("potential radius must be non-negative, got %v", sp.PotentialRadius)
	}
	if sp.PotentialPct < 0 || sp.PotentialPct > 1 {
		return fmt.Errorf("potential pct must be in [0,1], got %v", sp.PotentialPct)
	}
	densityActive := sp.LocalAreaDensity > 0
	countActive := sp.NumActiveColumnsPerInhArea > 0
	if densityActive == countActive {
		return fmt.Errorf("exactly one of localAreaDensity (%v) and numActiveColumnsPerInhArea (%v) must be positive",
			sp.LocalAreaDensity, sp.NumActiveColumnsPerInhArea)
	}
	if densityActive && sp.LocalAreaDensity > 0.5 {
		return fmt.Errorf("local area density must be in (0,0.5], got %v", sp.LocalAreaDensity)
	}
	if sp.StimulusThreshold < 0 {
		return fmt.Errorf("stimulus threshold must be non-negative, got %v", sp.StimulusThreshold)
	}
	if sp.SynPermMin != 0 || sp.SynPermMax > 1 || sp.SynPermMin > sp.SynPermMax {
		return fmt.Errorf("permanence bounds must satisfy 0 = min <= max <= 1, got [%v,%v]",
			sp.SynPermMin, sp.SynPermMax)
	}
	if sp.SynPermTrimThreshold < sp.SynPermMin || sp.SynPermTrimThreshold > sp.SynPermConnected {
		return fmt.Errorf("trim threshold %v must be in [min %v, connected %v]",
			sp.SynPermTrimThreshold, sp.SynPermMin, sp.SynPermConnected)
	}
	if sp.SynPermConnected > sp.SynPermMax {
		return fmt.Errorf("connected threshold %v exceeds max permanence %v",
			sp.SynPermConnected, sp.SynPermMax)
	}
	if sp.SynPermInactiveDec < 0 || sp.SynPermActiveInc < 0 || sp.SynPermBelowStimulusInc < 0 {
		return fmt.Errorf("permanence increments must be non-negative")
	}
	if sp.MinPctOverlapDutyCycles < 0 || sp.MinPctOverlapDutyCycles > 1 {
		return fmt.Errorf("min pct overlap duty cycles must be in [0,1], got %v", sp.MinPctOverlapDutyCycles)
	}
	if sp.MinPctActiveDutyCycles < 0 || sp.MinPctActiveDutyCycles > 1 {
		return fmt.Errorf("min pct active duty cycles must be in [0,1], got %v", sp.MinPctActiveDutyCycles)
	}
	if sp.DutyCyclePeriod < 1 {
		return fmt.Errorf("duty cycle period must be positive, got %v", sp.DutyCyclePeriod)
	}
	if sp.MaxBoost < 1 {
		return fmt.Errorf("max boost must be >= 1, got %v", sp.MaxBoost)
	}
	if sp.UpdatePeriod < 1 {
		return fmt.Errorf("update period must be positive, got %v", sp.UpdatePeriod)
	}
	if sp.InitConnectedPct < 0 || sp.InitConnectedPct > 1 {
		return fmt.Errorf("init connected pct must be in [0,1], got %v", sp.InitConnectedPct)
	}
	return nil
}
