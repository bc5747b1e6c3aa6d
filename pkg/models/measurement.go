package models

// MeasurementResult holds the physical-unit crack measurements derived from a
// binary segmentation mask. It carries exactly these three fields; the
// intermediate skeleton, distance field, and per-point width samples are
// internal state and never cross this boundary.
type MeasurementResult struct {
	LengthMM    float64 `json:"length_mm"`
	MaxWidthMM  float64 `json:"max_width_mm"`
	MeanWidthMM float64 `json:"mean_width_mm"`
}

// CoverageSummary reports how much of the mask is crack foreground and the
// severity bucket derived from it.
type CoverageSummary struct {
	CrackPixels int     `json:"crack_pixels"`
	TotalPixels int     `json:"total_pixels"`
	CoveragePct float64 `json:"crack_coverage_pct"`
	Severity    string  `json:"severity"`
}

// Severity buckets for crack coverage.
const (
	SeverityNone   = "None / Very Low"
	SeverityLow    = "Low"
	SeverityMedium = "Medium"
	SeverityHigh   = "High"
)

// SeverityFor maps a coverage percentage to its severity bucket.
func SeverityFor(coveragePct float64) string {
	switch {
	case coveragePct < 0.5:
		return SeverityNone
	case coveragePct < 2.0:
		return SeverityLow
	case coveragePct < 5.0:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}
