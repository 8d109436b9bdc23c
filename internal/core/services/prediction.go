package services

import (
	"context"
	"fmt"
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"housing-price-service/internal/core/domain"
	ports "housing-price-service/internal/core/ports/output"
)

// PredictionService runs a request through the adapter and the loaded model.
type PredictionService struct {
	registry *ModelRegistry
	adapter  *FeatureAdapter
	history  ports.HistoryRepository
	metrics  ports.MetricsRecorder
}

func NewPredictionService(
	registry *ModelRegistry,
	adapter *FeatureAdapter,
	history ports.HistoryRepository,
	metrics ports.MetricsRecorder,
) *PredictionService {
	return &PredictionService{
		registry: registry,
		adapter:  adapter,
		history:  history,
		metrics:  metrics,
	}
}

// Predict returns domain.ErrModelNotLoaded when no model is published yet.
// Failures caused by the input or the model wrap domain.ErrPredictionFailed.
func (s *PredictionService) Predict(ctx context.Context, features domain.FeatureMap) (*domain.PredictionResult, error) {
	model, err := s.registry.snapshot()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	y, err := s.run(model, features)
	latency := time.Since(start)

	if s.metrics != nil {
		s.metrics.ObservePrediction(latency, err)
	}
	if err != nil {
		log.WithError(err).WithField("latency_ms", latency.Milliseconds()).Warn("prediction failed")
		return nil, fmt.Errorf("%w: %w", domain.ErrPredictionFailed, err)
	}

	record := &domain.PredictionRecord{
		Features:   features.Clone(),
		Prediction: y,
		Timestamp:  time.Now().UTC(),
	}
	id, err := s.history.Append(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("record prediction: %w", err)
	}

	log.WithFields(log.Fields{
		"id":         id,
		"prediction": y,
		"latency_ms": latency.Milliseconds(),
	}).Debug("prediction served")

	return &domain.PredictionResult{
		Prediction:     y,
		LatencySeconds: latency.Seconds(),
	}, nil
}

func (s *PredictionService) run(model *loadedModel, features domain.FeatureMap) (y float64, err error) {
	input, err := s.adapter.Adapt(features, model.schema, model.structured)
	if err != nil {
		return 0, err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("model panicked: %v", r)
		}
	}()

	out, err := model.predictor.Predict(input)
	if err != nil {
		return 0, err
	}
	if len(out) != 1 || math.IsNaN(out[0]) || math.IsInf(out[0], 0) {
		return 0, fmt.Errorf("%w: got %v", domain.ErrBadModelOutput, out)
	}
	return out[0], nil
}
