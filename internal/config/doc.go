// Package config provides configuration loading, merging, and validation
// facilities for the vault service and its command-line client.
//
// Configuration is assembled from multiple sources. Earlier sources win for
// any field they set; later sources only fill fields that are still zero:
//  1. Environment variables
//  2. Command-line flags (server only)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server runtime and
// [GetClientConfig] for the administrative client.
package config
