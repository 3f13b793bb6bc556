// Package config loads, normalizes, and validates Brand Studio configuration.
package config
