// Package config defines the application configuration structures and the
// environment-driven loading logic. Configuration is read once at process
// start and treated as immutable for the lifetime of the process; request
// handling code receives it by value and never mutates it.
package config
