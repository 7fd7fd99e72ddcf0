// Package config assembles the effective flawscan configuration.
//
// Precedence, lowest to highest: built-in defaults, the YAML config file
// (--config flag, FLAWSCAN_CONFIG, or ./flawscan.yaml), environment
// variables (with optional .env loading), and CLI flag overrides. API keys
// are read from the environment only and are never written back to disk.
package config
