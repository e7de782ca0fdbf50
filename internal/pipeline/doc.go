// Package pipeline runs teacher records through resolution, inference,
// assembly and standardization, and ties the stages to files on disk.
package pipeline
