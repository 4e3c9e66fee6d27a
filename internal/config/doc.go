// Package config defines the application configuration and loads it from
// environment variables and an optional YAML file. Every key has a default,
// so the server runs with zero configuration.
package config
