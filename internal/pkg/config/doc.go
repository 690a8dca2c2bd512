// Package config holds the validated settings of the logger, the KAT run
// store, the speed test and the REST server, and loads the server settings
// from YAML.
package config
