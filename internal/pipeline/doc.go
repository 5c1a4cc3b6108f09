// Package pipeline expands the command-line inputs, probes and classifies
// each one on a bounded worker pool, and writes the per-file report.
package pipeline
