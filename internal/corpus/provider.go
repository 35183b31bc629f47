// Package corpus defines the lesson file-system abstraction.
package corpus

import "github.com/starford/lessonfmt/internal/models"

// Provider is the interface for lesson file operations. Paths are relative
// to the content root.
type Provider interface {
	// List returns every lesson file under the root, sorted by path.
	List() ([]models.Lesson, error)
	// Read returns the raw bytes of the lesson at path.
	Read(path string) ([]byte, error)
	// Write atomically replaces the lesson at path.
	Write(path string, content []byte) error
	// Display returns path as it should appear in console output.
	Display(path string) string
}
