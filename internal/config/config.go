package config

// Version is the CLI release string. Overridden at build time via
// -ldflags "-X github.com/nimbusctl/nimbus/internal/config.Version=...".
var Version = "0.0.0-dev"

// UserAgentProduct is the product token used in outbound User-Agent strings.
const UserAgentProduct = "NimbusCLI"
