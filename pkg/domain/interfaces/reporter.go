package interfaces

// StepReporter publishes results of a CI step to the workflow runner
type StepReporter interface {
	// SetOutput sets a step output consumed by later steps
	SetOutput(name, value string) error

	// Warning emits a warning annotation
	Warning(msg string)

	// Error emits an error annotation
	Error(msg string)

	// Mask hides the value in all later runner logs
	Mask(value string)
}
