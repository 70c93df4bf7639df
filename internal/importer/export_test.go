package importer

// Test-only exports for internal helper functions.

//nolint:gochecknoglobals // Test-only exports
var (
	ResolveFiles = resolveFiles
	Excluded     = excluded
	CleanLyrics  = cleanLyrics
)
