// Package config provides configuration loading, merging, and validation
// facilities for the nexusctl and databag-server binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win over later ones for non-zero fields):
//  1. Command-line flags explicitly set by the user
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults ([Defaults])
//
// The main entry points are [GetStructuredConfig] for every binary and
// [GetServerConfig] for the data-bag server.
package config
