// Package classify provides the business boundary for BFHL token classification.
// It defines the Engine (pure single-pass classifier), the Service (IDs, tracing,
// metrics and logging around the engine), and the Result model.
package classify
