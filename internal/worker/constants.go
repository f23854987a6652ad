package worker

// Log messages
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanic    = "Worker job panicked"
	LogMsgJobQueueFull      = "Job queue full, dropping job"
	LogMsgWorkerPoolStopped = "Worker pool stopped"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
	TestJobWaitTimeout   = 500 // milliseconds
)
