// Package config provides configuration loading, merging, and validation
// facilities for confctl itself.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. confctl configuration file (--config / CONFCTL_CONFIG)
//  3. CONFCTL_-prefixed environment variables
//  4. Command-line flags
//
// The main entry point is [GetStructuredConfig].
package config
