package dto

import (
	"time"

	"housing-price-service/internal/core/domain"
)

type PredictRequest struct {
	Features map[string]any `json:"features"`
}

type PredictResponse struct {
	Prediction     float64 `json:"prediction"`
	LatencySeconds float64 `json:"latency_seconds"`
}

type PredictionRecordResponse struct {
	ID         int64          `json:"id"`
	Features   map[string]any `json:"features"`
	Prediction float64        `json:"prediction"`
	Timestamp  string         `json:"timestamp"`
}

type DeletePredictionResponse struct {
	Message string `json:"message"`
	Deleted bool   `json:"deleted"`
}

type ModelInfoResponse struct {
	Features   []string `json:"features"`
	Structured bool     `json:"structured"`
	Kind       string   `json:"kind"`
}

func ToPredictResponse(r *domain.PredictionResult) PredictResponse {
	return PredictResponse{
		Prediction:     r.Prediction,
		LatencySeconds: r.LatencySeconds,
	}
}

func ToPredictionRecordResponse(r *domain.PredictionRecord) PredictionRecordResponse {
	features := map[string]any(r.Features)
	if features == nil {
		features = map[string]any{}
	}
	return PredictionRecordResponse{
		ID:         r.ID,
		Features:   features,
		Prediction: r.Prediction,
		Timestamp:  r.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}

func ToModelInfoResponse(info domain.ModelInfo) ModelInfoResponse {
	features := info.Features
	if features == nil {
		features = []string{}
	}
	return ModelInfoResponse{
		Features:   features,
		Structured: info.Structured,
		Kind:       string(info.Kind),
	}
}
