// Package config provides configuration loading, merging, and validation
// for the portal server and the FileMover command line client.
//
// Configuration is assembled from the following sources, later sources
// overriding earlier non-zero fields:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The entry points are [GetStructuredConfig] for the portal server and
// [GetClientConfig] for the command line client.
package config
