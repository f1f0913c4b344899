// Package workers provides abstractions for managing and running the agent's
// background jobs, such as the periodic sync trigger.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to return quickly and spawn goroutines
// internally; cancellation comes from the context they were built with.
type Worker interface {
	Run()
}
