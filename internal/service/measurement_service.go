package service

import (
	"context"
	"image"
	"time"

	"github.com/sirupsen/logrus"

	"go-crack-quant/internal/logger"
	"go-crack-quant/internal/mask"
	"go-crack-quant/internal/quantify"
	"go-crack-quant/pkg/models"
)

// MeasurementService is the application-facing entry point for crack
// quantification. It normalizes caller input into binary masks, runs the
// quantifier, and reports coverage summaries.
type MeasurementService interface {
	// Measure converts a decoded image into a binary mask (nonzero pixel =
	// foreground) and quantifies it. pxToMM <= 0 selects the configured
	// default scale.
	Measure(ctx context.Context, img image.Image, pxToMM float64) (*models.MeasurementResult, error)

	// MeasureMask quantifies an already-binarized mask.
	MeasureMask(ctx context.Context, m *mask.Binary, pxToMM float64) (*models.MeasurementResult, error)

	// Summarize reports crack coverage and its severity bucket.
	Summarize(m *mask.Binary) models.CoverageSummary
}

type measurementService struct {
	quantifier    *quantify.Quantifier
	defaultPxToMM float64
}

// NewMeasurementService creates a measurement service around a quantifier.
func NewMeasurementService(q *quantify.Quantifier, defaultPxToMM float64) MeasurementService {
	if defaultPxToMM <= 0 {
		defaultPxToMM = quantify.DefaultPxToMM
	}
	return &measurementService{quantifier: q, defaultPxToMM: defaultPxToMM}
}

func (s *measurementService) Measure(ctx context.Context, img image.Image, pxToMM float64) (*models.MeasurementResult, error) {
	return s.MeasureMask(ctx, mask.FromImage(img), pxToMM)
}

func (s *measurementService) MeasureMask(ctx context.Context, m *mask.Binary, pxToMM float64) (*models.MeasurementResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if pxToMM <= 0 {
		pxToMM = s.defaultPxToMM
	}

	start := time.Now()
	result, err := s.quantifier.Quantify(m, quantify.DefaultOptions().WithScale(pxToMM))
	if err != nil {
		logger.WithError(err).Error("crack quantification failed")
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"rows":          m.Rows(),
		"cols":          m.Cols(),
		"foreground":    m.CountForeground(),
		"px_to_mm":      pxToMM,
		"length_mm":     result.LengthMM,
		"max_width_mm":  result.MaxWidthMM,
		"mean_width_mm": result.MeanWidthMM,
		"elapsed":       time.Since(start).String(),
	}).Info("crack quantification complete")

	return &result, nil
}

func (s *measurementService) Summarize(m *mask.Binary) models.CoverageSummary {
	summary := models.CoverageSummary{}
	if m != nil {
		summary.CrackPixels = m.CountForeground()
		summary.TotalPixels = m.Rows() * m.Cols()
	}
	if summary.TotalPixels > 0 {
		summary.CoveragePct = float64(summary.CrackPixels) / float64(summary.TotalPixels) * 100.0
	}
	summary.Severity = models.SeverityFor(summary.CoveragePct)
	return summary
}
