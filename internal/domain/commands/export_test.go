package commands

// Decide exports decide for testing.
var Decide = decide //nolint:gochecknoglobals // test export
