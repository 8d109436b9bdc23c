package domain

import "time"

// PredictionRecord is one successful prediction kept in history.
type PredictionRecord struct {
	ID         int64      `json:"id"`
	Features   FeatureMap `json:"features"`
	Prediction float64    `json:"prediction"`
	Timestamp  time.Time  `json:"timestamp"`
}

type PredictionResult struct {
	Prediction     float64 `json:"prediction"`
	LatencySeconds float64 `json:"latency_seconds"`
}
