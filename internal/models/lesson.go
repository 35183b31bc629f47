// Package models defines the domain types for lessonfmt.
package models

// Lesson is a lesson file found by a corpus scan.
type Lesson struct {
	// Path is relative to the content root.
	Path string
	// Checksum is the digest of the file content at scan time.
	Checksum string
}
