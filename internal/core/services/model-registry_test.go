package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housing-price-service/internal/core/domain"
	ports "housing-price-service/internal/core/ports/output"
	"housing-price-service/internal/testutil"
)

func flatArtifact(width int) *ports.Artifact {
	return &ports.Artifact{
		Kind:        domain.ModelKindLinear,
		NumFeatures: width,
		Predictor:   &testutil.RecordingPredictor{Output: []float64{1}},
	}
}

func TestModelRegistry_Load(t *testing.T) {
	loader := new(testutil.MockArtifactLoader)
	loader.On("LoadArtifact", "model.json").Return(flatArtifact(3), nil)
	loader.On("LoadSchema", "columns.json").Return(domain.FeatureSchema{"f1", "f2", "f3"}, nil)

	r := NewModelRegistry(loader)
	assert.False(t, r.IsReady())

	require.NoError(t, r.Load("model.json", "columns.json"))
	assert.True(t, r.IsReady())

	info, err := r.Describe()
	require.NoError(t, err)
	assert.Equal(t, []string{"f1", "f2", "f3"}, info.Features)
	assert.False(t, info.Structured)
	assert.Equal(t, domain.ModelKindLinear, info.Kind)
	loader.AssertExpectations(t)
}

func TestModelRegistry_Load_PipelineIsStructured(t *testing.T) {
	loader := new(testutil.MockArtifactLoader)
	loader.On("LoadArtifact", "model.json").Return(&ports.Artifact{
		Kind:      domain.ModelKindPipeline,
		Predictor: &testutil.RecordingPredictor{Output: []float64{1}},
	}, nil)
	loader.On("LoadSchema", "columns.json").Return(domain.FeatureSchema{"suburb", "bathroom"}, nil)

	r := NewModelRegistry(loader)
	require.NoError(t, r.Load("model.json", "columns.json"))

	info, err := r.Describe()
	require.NoError(t, err)
	assert.True(t, info.Structured)
}

func TestModelRegistry_Load_ArtifactError(t *testing.T) {
	loader := new(testutil.MockArtifactLoader)
	loader.On("LoadArtifact", "missing.json").Return(nil, errors.New("open missing.json: no such file"))

	r := NewModelRegistry(loader)
	err := r.Load("missing.json", "columns.json")
	assert.ErrorIs(t, err, domain.ErrStartupFailure)
	assert.False(t, r.IsReady())
	loader.AssertNotCalled(t, "LoadSchema", "columns.json")
}

func TestModelRegistry_Load_SchemaError(t *testing.T) {
	loader := new(testutil.MockArtifactLoader)
	loader.On("LoadArtifact", "model.json").Return(flatArtifact(0), nil)
	loader.On("LoadSchema", "columns.json").Return(nil, domain.ErrInvalidSchema)

	r := NewModelRegistry(loader)
	err := r.Load("model.json", "columns.json")
	assert.ErrorIs(t, err, domain.ErrStartupFailure)
	assert.ErrorIs(t, err, domain.ErrInvalidSchema)
	assert.False(t, r.IsReady())
}

func TestModelRegistry_Load_SchemaMismatch(t *testing.T) {
	loader := new(testutil.MockArtifactLoader)
	loader.On("LoadArtifact", "model.json").Return(flatArtifact(2), nil)
	loader.On("LoadSchema", "columns.json").Return(domain.FeatureSchema{"f1", "f2", "f3"}, nil)

	r := NewModelRegistry(loader)
	err := r.Load("model.json", "columns.json")
	assert.ErrorIs(t, err, domain.ErrSchemaMismatch)
	assert.False(t, r.IsReady())
}

func TestModelRegistry_Load_Twice(t *testing.T) {
	loader := new(testutil.MockArtifactLoader)
	loader.On("LoadArtifact", "model.json").Return(flatArtifact(1), nil).Once()
	loader.On("LoadSchema", "columns.json").Return(domain.FeatureSchema{"f1"}, nil).Once()

	r := NewModelRegistry(loader)
	require.NoError(t, r.Load("model.json", "columns.json"))

	err := r.Load("model.json", "columns.json")
	assert.ErrorIs(t, err, domain.ErrAlreadyLoaded)
	assert.True(t, r.IsReady())
}

func TestModelRegistry_Install_RejectsUnknownKind(t *testing.T) {
	r := NewModelRegistry(nil)

	err := r.Install(&ports.Artifact{Kind: "xgboost", Predictor: &testutil.RecordingPredictor{}}, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownModelKind)
	assert.False(t, r.IsReady())
}

func TestModelRegistry_DescribeBeforeLoad(t *testing.T) {
	r := NewModelRegistry(nil)

	_, err := r.Describe()
	assert.ErrorIs(t, err, domain.ErrModelNotLoaded)
}
