package domain

// ModelKind is the predictor type an artifact file declares.
type ModelKind string

const (
	ModelKindLinear   ModelKind = "linear"
	ModelKindDummy    ModelKind = "dummy"
	ModelKindPipeline ModelKind = "pipeline"
)

// structuredKinds lists the kinds that encode named, mixed-type fields themselves.
// Everything else needs a flat numeric vector in schema order.
var structuredKinds = map[ModelKind]bool{
	ModelKindPipeline: true,
}

var knownKinds = map[ModelKind]bool{
	ModelKindLinear:   true,
	ModelKindDummy:    true,
	ModelKindPipeline: true,
}

func (k ModelKind) Valid() bool {
	return knownKinds[k]
}

func (k ModelKind) AcceptsStructuredInput() bool {
	return structuredKinds[k]
}

// FeatureSchema is the canonical column order for flat-vector models.
type FeatureSchema []string

// ModelInfo describes the loaded model for the info endpoint.
type ModelInfo struct {
	Features   []string  `json:"features"`
	Structured bool      `json:"structured"`
	Kind       ModelKind `json:"kind"`
}

// PredictorInput is what a predictor receives: either an ordered vector or a
// named record, never both.
type PredictorInput struct {
	Structured bool
	Vector     []float64
	Record     FeatureMap
}
