package validation

import (
	"fmt"
	"math"

	apperrors "go-crack-quant/internal/errors"
	"go-crack-quant/internal/mask"
)

// ValidateScale checks the pixel-to-millimeter calibration factor. A
// non-positive or non-finite scale is a caller bug, not a degenerate image,
// and is reported as a validation error.
func ValidateScale(pxToMM float64) error {
	if math.IsNaN(pxToMM) || math.IsInf(pxToMM, 0) {
		return apperrors.NewValidationError(fmt.Sprintf("px_to_mm must be finite, got %v", pxToMM), nil)
	}
	if pxToMM <= 0 {
		return apperrors.NewValidationError(fmt.Sprintf("px_to_mm must be > 0, got %v", pxToMM), nil)
	}
	return nil
}

// ValidateMask rejects a nil mask. Empty and all-background masks are valid
// degenerate inputs and pass.
func ValidateMask(m *mask.Binary) error {
	if m == nil {
		return apperrors.NewValidationError("mask must not be nil", nil)
	}
	return nil
}
