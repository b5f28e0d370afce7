// Package config manages the PromptKit config file (~/.promptkit/config.yaml)
// and environment variable overrides via Viper.
package config
