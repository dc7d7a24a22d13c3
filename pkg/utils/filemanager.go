// =============================================================================
// Sales Report Generator - File Manager
// =============================================================================
//
// Handles filesystem staging for the report pipeline: creating the working
// directories, sanitizing uploaded file names, and staging uploads under
// collision-free names so concurrent requests never clobber each other's
// files.
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileManager owns the three working directories of the pipeline.
type FileManager struct {
	// UploadDir is where uploaded workbooks are staged.
	UploadDir string

	// OutputDir is where generated PDF reports are written.
	OutputDir string

	// PlotDir is where chart images are written.
	PlotDir string
}

// NewFileManager creates a file manager for the given directories.
func NewFileManager(uploadDir, outputDir, plotDir string) *FileManager {
	return &FileManager{
		UploadDir: uploadDir,
		OutputDir: outputDir,
		PlotDir:   plotDir,
	}
}

// EnsureDirectories creates all working directories that do not yet exist.
func (fm *FileManager) EnsureDirectories() error {
	dirs := []string{fm.UploadDir, fm.OutputDir, fm.PlotDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// StageUpload writes an uploaded file into the upload directory under a
// sanitized, uuid-prefixed name and returns the staged path.
func (fm *FileManager) StageUpload(filename string, src io.Reader) (string, error) {
	name := SecureFilename(filename)
	if name == "" {
		return "", fmt.Errorf("unusable file name %q", filename)
	}
	staged := filepath.Join(fm.UploadDir, fmt.Sprintf("%s-%s", uuid.New().String(), name))

	dst, err := os.Create(staged)
	if err != nil {
		return "", fmt.Errorf("failed to stage upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(staged)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return staged, nil
}

// SecureFilename strips any path components from a client-supplied file name
// and replaces characters outside a conservative allow-list. The extension
// is preserved.
func SecureFilename(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == ".." || name == "/" {
		return ""
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), "._")
	return out
}

// Extension returns the lowercase file extension without the leading dot.
func Extension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}
