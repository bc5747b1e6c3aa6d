package quantify

import (
	"go-crack-quant/internal/mask"
	"go-crack-quant/pkg/models"
	"go-crack-quant/pkg/validation"
)

// Quantifier composes skeleton extraction, the distance transform, and the
// length and width estimators into the single mask-to-measurement operation.
// It is stateless across calls and safe for concurrent use with independent
// masks.
type Quantifier struct {
	skeletonizer Skeletonizer
	fieldBuilder DistanceFieldBuilder
	length       *LengthEstimator
	width        *WidthEstimator
}

// NewQuantifier wires a quantifier from its components. detector selects the
// boundary extraction, factory the nearest-two query implementation, and
// workers the width-search parallelism (<= 0 means one per CPU).
func NewQuantifier(detector EdgeDetector, factory SearcherFactory, workers int) *Quantifier {
	if detector == nil {
		detector = NewGradientEdgeDetector()
	}
	return &Quantifier{
		skeletonizer: NewSkeletonizer(),
		fieldBuilder: NewDistanceFieldBuilder(),
		length:       NewLengthEstimator(),
		width:        NewWidthEstimator(detector, factory, workers),
	}
}

// DistanceField exposes the Euclidean distance transform of a mask as an
// independent primitive. The width estimator does not read it; Quantify
// computes it only to match the original pipeline.
func (q *Quantifier) DistanceField(m *mask.Binary) *mask.Field {
	return q.fieldBuilder.Build(m)
}

// Skeleton exposes the thinned centerline of a mask.
func (q *Quantifier) Skeleton(m *mask.Binary) *mask.Binary {
	return q.skeletonizer.Skeletonize(m)
}

// Quantify measures a binary crack mask. Degenerate masks (empty, no
// foreground, no detectable boundary) return a zero-valued result and no
// error; only contract violations such as a non-positive scale or a nil mask
// fail.
func (q *Quantifier) Quantify(m *mask.Binary, opts Options) (models.MeasurementResult, error) {
	if err := validation.ValidateMask(m); err != nil {
		return models.MeasurementResult{}, err
	}
	if err := validation.ValidateScale(opts.PxToMM); err != nil {
		return models.MeasurementResult{}, err
	}

	if m.Rows() == 0 || m.Cols() == 0 || m.CountForeground() == 0 {
		return models.MeasurementResult{}, nil
	}

	skeleton := q.skeletonizer.Skeletonize(m)
	// Computed but not consumed by the width search.
	_ = q.fieldBuilder.Build(m)

	lengthMM := q.length.Length(skeleton, opts.PxToMM)
	maxMM, meanMM := q.width.Estimate(m, skeleton, opts.PxToMM)

	return models.MeasurementResult{
		LengthMM:    lengthMM,
		MaxWidthMM:  maxMM,
		MeanWidthMM: meanMM,
	}, nil
}
