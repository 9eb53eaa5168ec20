// Package pipeline runs the fixed generate, low-pass and detect sequence
// over one configuration and builds the figures and report it feeds to the
// command line and HTTP surfaces.
package pipeline
