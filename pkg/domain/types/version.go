package types

// Version is embedded at build time via -ldflags
var Version = "dev"
