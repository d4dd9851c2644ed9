// Package config loads and validates the application configuration:
// server settings, the provider profile (timezone and product table),
// and normalizer options.
package config
