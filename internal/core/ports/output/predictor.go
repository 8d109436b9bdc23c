package ports

import "housing-price-service/internal/core/domain"

// Predictor is a loaded regression model.
type Predictor interface {
	Predict(input domain.PredictorInput) ([]float64, error)
}

// Artifact is a deserialized model file together with its declared kind.
type Artifact struct {
	Kind domain.ModelKind
	// NumFeatures is the vector width a flat model was trained on, 0 if unknown.
	NumFeatures int
	Predictor   Predictor
}

// ArtifactLoader reads the model and schema produced outside this service.
type ArtifactLoader interface {
	LoadArtifact(path string) (*Artifact, error)
	LoadSchema(path string) (domain.FeatureSchema, error)
}
