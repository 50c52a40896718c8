package ibupdater

var (
	// Version of the ibupdater. It is set during build with ldflags.
	Version = "v0.1.0"
	// Build timestamp of the ibupdater. It is set during build with ldflags.
	Build = "n/a"
)
