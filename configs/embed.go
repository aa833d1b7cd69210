// Package configs provides the embedded configuration template for constream.
//
// The template is written by `constream init` either as .constream.yaml in
// the current directory or as the user config
// (~/.config/constream/config.yaml).
//
// Configuration hierarchy (see internal/config Load()):
//  1. Hardcoded defaults (internal/config NewConfig())
//  2. User config (~/.config/constream/config.yaml)
//  3. Project config (.constream.yaml)
//  4. Environment variables (CONSTREAM_*, NO_COLOR)
package configs

import _ "embed"

// ConfigTemplate is the commented example configuration.
//
//go:embed constream.example.yaml
var ConfigTemplate string
