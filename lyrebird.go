// Package lyrebird holds shared metadata for the Lyrebird CLI.
package lyrebird

// Version is the current Lyrebird release version.
var Version = "0.1.0"
