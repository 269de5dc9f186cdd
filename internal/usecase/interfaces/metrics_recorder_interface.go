package interfaces

// IMetricsRecorder receives workflow events for observability. Use cases
// accept a nil recorder.
type IMetricsRecorder interface {
	ObserveTransition(workflow, estado string)
	ObserveNotification(result string)
}
