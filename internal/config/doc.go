// Package config loads application configuration from environment
// variables (prefix GRADEPULSE) and an optional YAML file. Environment
// values win; defaults cover everything else, so both binaries run
// with no configuration at all.
package config
