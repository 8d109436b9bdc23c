package domain

import "errors"

// ============================================================================
// Model Registry Errors
// ============================================================================

var (
	ErrStartupFailure   = errors.New("model startup failed")
	ErrModelNotLoaded   = errors.New("model not loaded")
	ErrAlreadyLoaded    = errors.New("model already loaded")
	ErrUnknownModelKind = errors.New("unknown model type")
	ErrInvalidArtifact  = errors.New("invalid model artifact")
	ErrInvalidSchema    = errors.New("invalid feature schema")
	ErrSchemaMismatch   = errors.New("feature schema does not match model")
)

// ============================================================================
// Prediction Errors
// ============================================================================

// Adapter errors
var (
	ErrFeatureCoercion     = errors.New("feature cannot be converted to a number")
	ErrInvalidFeatureValue = errors.New("feature value must be a number, string or boolean")
)

// Model invocation errors
var (
	ErrPredictionFailed = errors.New("prediction failed")
	ErrBadModelOutput   = errors.New("model must return exactly one finite value")
)

// ============================================================================
// Session Errors
// ============================================================================

var (
	ErrUserExists         = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
