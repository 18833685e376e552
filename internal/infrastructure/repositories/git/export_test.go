//go:build unit

package git

// PushSource exports pushSource for testing.
var PushSource = pushSource //nolint:gochecknoglobals // test export

// RefSpecs exports refSpecs for testing.
var RefSpecs = refSpecs //nolint:gochecknoglobals // test export
