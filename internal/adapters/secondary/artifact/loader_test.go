package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housing-price-service/internal/core/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadArtifact_Linear(t *testing.T) {
	path := writeFile(t, "model.json", `{"type":"linear","intercept":100,"coefficients":[10,20,30]}`)

	art, err := NewFileLoader().LoadArtifact(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ModelKindLinear, art.Kind)
	assert.Equal(t, 3, art.NumFeatures)

	out, err := art.Predictor.Predict(domain.PredictorInput{Vector: []float64{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, []float64{100 + 10 + 40 + 90}, out)
}

func TestLoadArtifact_TypeIsCaseInsensitive(t *testing.T) {
	path := writeFile(t, "model.json", `{"type":"Dummy","constant":1000}`)

	art, err := NewFileLoader().LoadArtifact(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ModelKindDummy, art.Kind)

	out, err := art.Predictor.Predict(domain.PredictorInput{Vector: []float64{0, 0, 0}})
	require.NoError(t, err)
	assert.Equal(t, []float64{1000}, out)
}

func TestLoadArtifact_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"malformed json", `{"type":`, domain.ErrInvalidArtifact},
		{"unknown type", `{"type":"xgboost"}`, domain.ErrUnknownModelKind},
		{"missing type", `{"intercept":1}`, domain.ErrUnknownModelKind},
		{"linear without coefficients", `{"type":"linear","intercept":1}`, domain.ErrInvalidArtifact},
		{"dummy without constant", `{"type":"dummy"}`, domain.ErrInvalidArtifact},
		{"pipeline width mismatch", `{"type":"pipeline","numeric":[{"name":"a","mean":0,"scale":1}],"regressor":{"coefficients":[1,2]}}`, domain.ErrInvalidArtifact},
		{"pipeline zero scale", `{"type":"pipeline","numeric":[{"name":"a","mean":0,"scale":0}],"regressor":{"coefficients":[1]}}`, domain.ErrInvalidArtifact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "model.json", tt.content)
			_, err := NewFileLoader().LoadArtifact(path)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadArtifact_MissingFile(t *testing.T) {
	_, err := NewFileLoader().LoadArtifact(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadSchema(t *testing.T) {
	path := writeFile(t, "columns.json", `["number_of_bedroom","bathroom","car_park"]`)

	schema, err := NewFileLoader().LoadSchema(path)
	require.NoError(t, err)
	assert.Equal(t, domain.FeatureSchema{"number_of_bedroom", "bathroom", "car_park"}, schema)
}

func TestParseSchema(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    domain.FeatureSchema
		wantErr bool
	}{
		{"empty array", `[]`, domain.FeatureSchema{}, false},
		{"ordered", `["b","a"]`, domain.FeatureSchema{"b", "a"}, false},
		{"null", `null`, nil, true},
		{"object", `{"cols":["a"]}`, nil, true},
		{"numbers", `[1,2]`, nil, true},
		{"empty name", `["a",""]`, nil, true},
		{"duplicate", `["a","a"]`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := ParseSchema([]byte(tt.content))
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidSchema)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, schema)
		})
	}
}

func TestLoadSchema_MissingFile(t *testing.T) {
	_, err := NewFileLoader().LoadSchema(filepath.Join(t.TempDir(), "columns.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestShippedModels(t *testing.T) {
	loader := NewFileLoader()
	dir := filepath.Join("..", "..", "..", "..", "model")

	schema, err := loader.LoadSchema(filepath.Join(dir, "columns.json"))
	require.NoError(t, err)
	assert.Equal(t, domain.FeatureSchema{"suburb", "number_of_bedroom", "bathroom", "car_park"}, schema)

	t.Run("pipeline", func(t *testing.T) {
		art, err := loader.LoadArtifact(filepath.Join(dir, "model.json"))
		require.NoError(t, err)
		require.True(t, art.Kind.AcceptsStructuredInput())

		zeros := domain.FeatureMap{}
		for _, c := range schema {
			zeros[c] = 0
		}
		for _, rec := range []domain.FeatureMap{
			zeros,
			{"suburb": "Richmond", "number_of_bedroom": 3, "bathroom": 2, "car_park": 1},
		} {
			out, err := art.Predictor.Predict(domain.PredictorInput{Structured: true, Record: rec})
			require.NoError(t, err)
			require.Len(t, out, 1)
			assert.GreaterOrEqual(t, out[0], 0.0)
			assert.LessOrEqual(t, out[0], 10_000_000.0)
		}
	})

	t.Run("linear", func(t *testing.T) {
		art, err := loader.LoadArtifact(filepath.Join(dir, "linear.json"))
		require.NoError(t, err)
		assert.Equal(t, len(schema), art.NumFeatures)

		out, err := art.Predictor.Predict(domain.PredictorInput{Vector: make([]float64, len(schema))})
		require.NoError(t, err)
		assert.Equal(t, []float64{350000}, out)
	})
}
