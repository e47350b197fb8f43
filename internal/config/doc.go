// Package config provides configuration loading, merging, and validation
// facilities for the rmcloud client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables, optionally seeded from a .env file
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Defaults
//
// The main entry point is [GetClientConfig].
package config
