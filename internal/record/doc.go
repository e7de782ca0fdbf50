// Package record holds the per-row data shapes of the pipeline: the
// read-only Teacher input record and the Transformed record that the
// resolver, the inference gateway and the assembler fill in turn.
package record
