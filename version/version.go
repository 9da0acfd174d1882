package version

// overridden at build time with -ldflags "-X opencsg.com/github-team-membership/version.Version=..."
var (
	Version     = "v0.1.0"
	GitRevision = "unknown"
)
