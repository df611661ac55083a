package app

import "github.com/thenoetrevino/veyr/internal/config"

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	config  *config.Config
	closers []func() error
}

// WithConfig sets the configuration the app runs with
func WithConfig(c *config.Config) Option {
	return func(cfg *appConfig) {
		cfg.config = c
	}
}

// WithCloser registers a cleanup run by App.Close, in registration order
func WithCloser(fn func() error) Option {
	return func(cfg *appConfig) {
		cfg.closers = append(cfg.closers, fn)
	}
}
