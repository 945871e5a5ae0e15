// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from an optional YAML file and MINIRSA_* environment variables,
// validated, and handed to the logger and the RSA processors.
package config
