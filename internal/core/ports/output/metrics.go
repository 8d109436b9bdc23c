package ports

import "time"

// MetricsRecorder accumulates process-wide prediction metrics.
type MetricsRecorder interface {
	ObservePrediction(latency time.Duration, err error)
}
