package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"housing-price-service/internal/core/domain"
	ports "housing-price-service/internal/core/ports/output"
)

type fileLoader struct{}

// NewFileLoader creates a loader that reads JSON artifacts from the local filesystem.
func NewFileLoader() ports.ArtifactLoader {
	return &fileLoader{}
}

// header is decoded first to pick the concrete model type.
type header struct {
	Type domain.ModelKind `json:"type"`
}

func (l *fileLoader) LoadArtifact(path string) (*ports.Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", path, err)
	}

	var h header
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrInvalidArtifact, path, err)
	}
	kind := domain.ModelKind(strings.ToLower(string(h.Type)))
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownModelKind, h.Type)
	}

	art, err := Decode(kind, data)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"path":         path,
		"kind":         kind,
		"num_features": art.NumFeatures,
	}).Debug("model artifact decoded")

	return art, nil
}

func (l *fileLoader) LoadSchema(path string) (domain.FeatureSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", path, err)
	}
	return ParseSchema(data)
}

// Decode builds a predictor of the given kind from its JSON definition.
func Decode(kind domain.ModelKind, data []byte) (*ports.Artifact, error) {
	var (
		p     ports.Predictor
		width int
		err   error
	)

	switch kind {
	case domain.ModelKindLinear:
		var m LinearModel
		if err = json.Unmarshal(data, &m); err == nil {
			err = m.validate()
		}
		p, width = &m, len(m.Coefficients)
	case domain.ModelKindDummy:
		var m DummyModel
		if err = json.Unmarshal(data, &m); err == nil {
			err = m.validate()
		}
		p = &m
	case domain.ModelKindPipeline:
		var m PipelineModel
		if err = json.Unmarshal(data, &m); err == nil {
			err = m.validate()
		}
		p = &m
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownModelKind, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidArtifact, kind, err)
	}

	return &ports.Artifact{Kind: kind, NumFeatures: width, Predictor: p}, nil
}

// ParseSchema decodes a JSON array of unique, non-empty column names.
func ParseSchema(data []byte) (domain.FeatureSchema, error) {
	var cols []string
	if err := json.Unmarshal(data, &cols); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSchema, err)
	}
	if cols == nil {
		return nil, fmt.Errorf("%w: expected a JSON array of column names", domain.ErrInvalidSchema)
	}

	seen := make(map[string]bool, len(cols))
	for i, c := range cols {
		if c == "" {
			return nil, fmt.Errorf("%w: column %d has an empty name", domain.ErrInvalidSchema, i)
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: duplicate column %q", domain.ErrInvalidSchema, c)
		}
		seen[c] = true
	}
	return domain.FeatureSchema(cols), nil
}
