package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"housing-price-service/internal/core/domain"
	ports "housing-price-service/internal/core/ports/output"
)

// MockHistoryRepo is a mock of HistoryRepository.
type MockHistoryRepo struct {
	mock.Mock
}

func (m *MockHistoryRepo) Append(ctx context.Context, record *domain.PredictionRecord) (int64, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHistoryRepo) List(ctx context.Context) ([]*domain.PredictionRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PredictionRecord), args.Error(1)
}

func (m *MockHistoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUserRepo is a mock of UserRepository.
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.UserCredential) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) Get(ctx context.Context, username string) (*domain.UserCredential, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserCredential), args.Error(1)
}

// MockMetrics is a mock of MetricsRecorder.
type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) ObservePrediction(latency time.Duration, err error) {
	m.Called(latency, err)
}

// MockArtifactLoader is a mock of ArtifactLoader.
type MockArtifactLoader struct {
	mock.Mock
}

func (m *MockArtifactLoader) LoadArtifact(path string) (*ports.Artifact, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Artifact), args.Error(1)
}

func (m *MockArtifactLoader) LoadSchema(path string) (domain.FeatureSchema, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.FeatureSchema), args.Error(1)
}

// MockTokenIssuer is a mock of TokenIssuer.
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(username string) (string, error) {
	args := m.Called(username)
	return args.String(0), args.Error(1)
}
