package version

// Set at build time with -ldflags "-X github.com/artuross/pineapple/internal/meta/version.Version=...".
var Version = "dev"
