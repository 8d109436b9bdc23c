package services

import (
	"fmt"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"housing-price-service/internal/core/domain"
	ports "housing-price-service/internal/core/ports/output"
)

// loadedModel is published once and never mutated afterwards.
type loadedModel struct {
	kind       domain.ModelKind
	predictor  ports.Predictor
	schema     domain.FeatureSchema
	structured bool
}

// ModelRegistry owns the model artifact and its feature schema.
type ModelRegistry struct {
	loader ports.ArtifactLoader
	model  atomic.Pointer[loadedModel]
}

func NewModelRegistry(loader ports.ArtifactLoader) *ModelRegistry {
	return &ModelRegistry{loader: loader}
}

// Load reads the artifact and schema and publishes them together. It is meant
// to run once before the server accepts traffic; every error wraps
// domain.ErrStartupFailure.
func (r *ModelRegistry) Load(artifactPath, schemaPath string) error {
	if r.IsReady() {
		return fmt.Errorf("%w: %w", domain.ErrStartupFailure, domain.ErrAlreadyLoaded)
	}

	art, err := r.loader.LoadArtifact(artifactPath)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStartupFailure, err)
	}
	schema, err := r.loader.LoadSchema(schemaPath)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStartupFailure, err)
	}

	return r.publish(art, schema)
}

// Install publishes an already decoded artifact. Used by Load and by callers
// that build predictors in-process.
func (r *ModelRegistry) Install(art *ports.Artifact, schema domain.FeatureSchema) error {
	return r.publish(art, schema)
}

func (r *ModelRegistry) publish(art *ports.Artifact, schema domain.FeatureSchema) error {
	if art == nil || art.Predictor == nil {
		return fmt.Errorf("%w: %w: no predictor", domain.ErrStartupFailure, domain.ErrInvalidArtifact)
	}
	if !art.Kind.Valid() {
		return fmt.Errorf("%w: %w: %q", domain.ErrStartupFailure, domain.ErrUnknownModelKind, art.Kind)
	}

	structured := art.Kind.AcceptsStructuredInput()
	if !structured && art.NumFeatures > 0 && art.NumFeatures != len(schema) {
		return fmt.Errorf("%w: %w: model expects %d features, schema has %d",
			domain.ErrStartupFailure, domain.ErrSchemaMismatch, art.NumFeatures, len(schema))
	}

	m := &loadedModel{
		kind:       art.Kind,
		predictor:  art.Predictor,
		schema:     append(domain.FeatureSchema(nil), schema...),
		structured: structured,
	}
	if !r.model.CompareAndSwap(nil, m) {
		return fmt.Errorf("%w: %w", domain.ErrStartupFailure, domain.ErrAlreadyLoaded)
	}

	log.WithFields(log.Fields{
		"kind":       art.Kind,
		"features":   len(schema),
		"structured": structured,
	}).Info("model loaded")
	return nil
}

func (r *ModelRegistry) IsReady() bool {
	return r.model.Load() != nil
}

func (r *ModelRegistry) Describe() (domain.ModelInfo, error) {
	m := r.model.Load()
	if m == nil {
		return domain.ModelInfo{}, domain.ErrModelNotLoaded
	}
	return domain.ModelInfo{
		Features:   append([]string{}, m.schema...),
		Structured: m.structured,
		Kind:       m.kind,
	}, nil
}

// snapshot returns the published model or ErrModelNotLoaded.
func (r *ModelRegistry) snapshot() (*loadedModel, error) {
	m := r.model.Load()
	if m == nil {
		return nil, domain.ErrModelNotLoaded
	}
	return m, nil
}
