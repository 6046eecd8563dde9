// Package config loads the Instoc server configuration from environment
// variables, command-line flags and an optional JSON file, merging the three
// sources into a single validated [StructuredConfig].
package config
