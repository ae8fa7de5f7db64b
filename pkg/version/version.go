package version

// Version is set at build time with -ldflags "-X github.com/investrobot/ordertracker/pkg/version.Version=..."
var Version = "v0.1.0-dev"
