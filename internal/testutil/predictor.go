package testutil

import (
	"sync"

	"housing-price-service/internal/core/domain"
)

// PredictorFunc adapts a function to the Predictor port.
type PredictorFunc func(domain.PredictorInput) ([]float64, error)

func (f PredictorFunc) Predict(in domain.PredictorInput) ([]float64, error) {
	return f(in)
}

// RecordingPredictor returns Output and remembers every input it was given.
type RecordingPredictor struct {
	Output []float64
	Err    error

	mu     sync.Mutex
	inputs []domain.PredictorInput
}

func (p *RecordingPredictor) Predict(in domain.PredictorInput) ([]float64, error) {
	p.mu.Lock()
	p.inputs = append(p.inputs, in)
	p.mu.Unlock()

	if p.Err != nil {
		return nil, p.Err
	}
	return p.Output, nil
}

func (p *RecordingPredictor) Inputs() []domain.PredictorInput {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.PredictorInput(nil), p.inputs...)
}
