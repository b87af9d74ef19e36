// Package config handles configuration management for movex.
//
// Configuration is layered with koanf: the embedded defaults come first,
// then the user's XDG config file, then an explicit --config file and
// finally MOVEX_* environment variables. The result is unmarshalled into
// Config, whose Layout value is injected into the deployer so that tests
// can substitute alternate directory conventions.
package config
