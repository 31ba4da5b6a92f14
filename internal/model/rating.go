package model

// Rating is a qualitative performance band.
type Rating int

const (
	Poor Rating = iota
	Fair
	Good
	Excellent
)

func (r Rating) String() string {
	switch r {
	case Excellent:
		return "Excellent"
	case Good:
		return "Good"
	case Fair:
		return "Fair"
	default:
		return "Poor"
	}
}

// Severity drives presentation colouring.
type Severity int

const (
	Ok Severity = iota
	Warning
	Critical
)

func (s Severity) String() string {
	switch s {
	case Ok:
		return "ok"
	case Warning:
		return "warning"
	default:
		return "critical"
	}
}

// FairThreshold is shared by every tier.
const FairThreshold = 40.0

// Thresholds are the tier specific excellent/good cut-offs.
type Thresholds struct {
	Excellent float64
	Good      float64
}

var (
	ArcThresholds   = Thresholds{Excellent: 85, Good: 70}
	L2ArcThresholds = Thresholds{Excellent: 75, Good: 50}
	SlogThresholds  = Thresholds{Excellent: 80, Good: 60}
)

// Classify maps value onto a rating. A value equal to a threshold meets it.
func Classify(value, excellent, good float64) (Rating, Severity) {
	switch {
	case value >= excellent:
		return Excellent, Ok
	case value >= good:
		return Good, Ok
	case value >= FairThreshold:
		return Fair, Warning
	default:
		return Poor, Critical
	}
}

// SlogScore starts at 100 and is penalised for busy or slow log devices.
// Both penalties apply together.
func SlogScore(utilization, latencyMs float64) float64 {
	score := 100.0

	switch {
	case utilization > 80:
		score -= 30
	case utilization > 60:
		score -= 15
	}

	switch {
	case latencyMs > 10:
		score -= 20
	case latencyMs > 5:
		score -= 10
	}

	return score
}
