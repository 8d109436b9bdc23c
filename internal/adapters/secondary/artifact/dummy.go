package artifact

import (
	"errors"
	"math"

	"housing-price-service/internal/core/domain"
)

// DummyModel always predicts the same value, typically the training mean.
type DummyModel struct {
	Constant *float64 `json:"constant"`
}

func (m *DummyModel) validate() error {
	if m.Constant == nil {
		return errors.New("constant is required")
	}
	if math.IsNaN(*m.Constant) || math.IsInf(*m.Constant, 0) {
		return errors.New("constant must be finite")
	}
	return nil
}

func (m *DummyModel) Predict(domain.PredictorInput) ([]float64, error) {
	return []float64{*m.Constant}, nil
}
