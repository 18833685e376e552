package repositories

// OutputRepository exposes step outputs (oldVersion, newVersion, wasBumped) to the CI runner.
type OutputRepository interface {
	// SetOutput records name=value in the output file at target. An empty target
	// means the runner offers no output file.
	SetOutput(target, name, value string) error
}
