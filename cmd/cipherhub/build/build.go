package build

// Set at link time with -ldflags "-X github.com/sergeii/cipherhub/cmd/cipherhub/build.Version=..."
var (
	Version = "development"
	Commit  = "unknown"
	Time    = "unknown"
)
