// Package config defines the application configuration structures and
// loads them from the environment and optional config files via viper.
package config
