package artifact

import (
	"errors"
	"fmt"

	"housing-price-service/internal/core/domain"
)

// LinearModel is an ordinary least squares regressor over a flat vector.
type LinearModel struct {
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

func (m *LinearModel) validate() error {
	if len(m.Coefficients) == 0 {
		return errors.New("coefficients are required")
	}
	return nil
}

func (m *LinearModel) Predict(in domain.PredictorInput) ([]float64, error) {
	if in.Structured {
		return nil, errors.New("linear model expects a feature vector")
	}
	y, err := dot(m.Intercept, m.Coefficients, in.Vector)
	if err != nil {
		return nil, err
	}
	return []float64{y}, nil
}

func dot(intercept float64, coef, x []float64) (float64, error) {
	if len(coef) != len(x) {
		return 0, fmt.Errorf("expected %d features, got %d", len(coef), len(x))
	}
	y := intercept
	for i, c := range coef {
		y += c * x[i]
	}
	return y, nil
}
