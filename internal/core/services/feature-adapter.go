package services

import (
	"fmt"

	"housing-price-service/internal/core/domain"
)

// FeatureAdapter shapes request features into the input a model expects.
type FeatureAdapter struct{}

func NewFeatureAdapter() *FeatureAdapter {
	return &FeatureAdapter{}
}

// Adapt passes features through as a record for structured models. For flat
// models it builds a vector of len(schema) where index i holds schema[i]'s
// value, zero when absent. Keys outside the schema are dropped.
func (a *FeatureAdapter) Adapt(features domain.FeatureMap, schema domain.FeatureSchema, structured bool) (domain.PredictorInput, error) {
	if structured {
		for k, v := range features {
			if !domain.ValidValue(v) {
				return domain.PredictorInput{}, fmt.Errorf("feature %q: %w", k, domain.ErrInvalidFeatureValue)
			}
		}
		return domain.PredictorInput{Structured: true, Record: features.Clone()}, nil
	}

	vec := make([]float64, len(schema))
	for i, col := range schema {
		v, ok := features[col]
		if !ok {
			continue
		}
		f, err := domain.Float(v)
		if err != nil {
			return domain.PredictorInput{}, fmt.Errorf("feature %q: %w", col, err)
		}
		vec[i] = f
	}
	return domain.PredictorInput{Vector: vec}, nil
}
