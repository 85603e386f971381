package core

// StatusType tracks where an execution is in its lifecycle.
type StatusType string

const (
	StatusRunning StatusType = "RUNNING"
	StatusSuccess StatusType = "SUCCESS"
	StatusFailed  StatusType = "FAILED"
)
