package match

const (
	StatusExcellent = "excellent"
	StatusGood      = "good"
	StatusAverage   = "average"
	StatusPoor      = "poor"
)

// DetermineStatus maps an overall score onto a status tier.
func DetermineStatus(score float64) string {
	switch {
	case score >= 8.5:
		return StatusExcellent
	case score >= 7:
		return StatusGood
	case score >= 5:
		return StatusAverage
	default:
		return StatusPoor
	}
}

// ShouldShortlist reports whether a candidate is recommended for human review.
// Status is passed independently so callers can apply a manual override.
func ShouldShortlist(score float64, status string) bool {
	return score >= 7 || status == StatusExcellent || status == StatusGood
}
