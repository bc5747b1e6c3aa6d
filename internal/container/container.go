package container

import (
	"go-crack-quant/internal/config"
	apperrors "go-crack-quant/internal/errors"
	"go-crack-quant/internal/logger"
	"go-crack-quant/internal/quantify"
	"go-crack-quant/internal/service"
)

// Container wires the measurement pipeline from configuration.
type Container struct {
	Quantifier         *quantify.Quantifier
	MeasurementService service.MeasurementService
}

// NewContainer builds the dependency graph: edge detector and nearest-two
// search selected by config, quantifier, and the measurement service.
func NewContainer(cfg *config.Config) (*Container, error) {
	logger.SetLevel(cfg.LogLevel)

	var detector quantify.EdgeDetector
	switch cfg.EdgeDetector {
	case config.EdgeDetectorCanny:
		d, err := quantify.NewCannyEdgeDetector()
		if err != nil {
			return nil, apperrors.NewInternalError("canny edge detector unavailable", err)
		}
		detector = d
	default:
		detector = quantify.NewGradientEdgeDetector()
	}

	var factory quantify.SearcherFactory
	switch cfg.WidthSearch {
	case config.WidthSearchKDTree:
		factory = quantify.NewKDTreeSearcher
	default:
		factory = quantify.NewBruteForceSearcher
	}

	q := quantify.NewQuantifier(detector, factory, cfg.MaxWorkers)
	return &Container{
		Quantifier:         q,
		MeasurementService: service.NewMeasurementService(q, cfg.PxToMM),
	}, nil
}
