// =============================================================================
// Usage Translator - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the translator:
//   - Input file checks
//   - Output directory management
//   - All-or-nothing writing of a set of output files
//
// WRITE STRATEGY:
//   Every output is first written to a uniquely named temporary file next to
//   its destination. Only when all temporary files are written are they
//   renamed into place, so a failed run never leaves a half-written output
//   or a mix of old and new files behind due to a write error.
//
// =============================================================================

package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// OutputFile is one file of an output set.
type OutputFile struct {
	// Name is the file name relative to the output directory.
	Name string

	// Data is the complete file content.
	Data []byte
}

// FileManager handles the output files of a run.
type FileManager struct {
	// OutputDir is the directory where output files are placed.
	OutputDir string
}

// NewFileManager creates a FileManager for outputDir. An empty outputDir
// means the current directory.
func NewFileManager(outputDir string) *FileManager {
	if outputDir == "" {
		outputDir = "."
	}
	return &FileManager{OutputDir: outputDir}
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureOutputDir creates the output directory if it doesn't exist.
func (fm *FileManager) EnsureOutputDir() error {
	if err := os.MkdirAll(fm.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", fm.OutputDir, err)
	}
	return nil
}

// Path returns the full path of an output file name.
func (fm *FileManager) Path(name string) string {
	return filepath.Join(fm.OutputDir, name)
}

// =============================================================================
// OUTPUT WRITING
// =============================================================================

// WriteAll writes every file of the set, overwriting existing files.
//
// PARAMETERS:
//   - files: The output set. Names must be unique.
//
// RETURNS:
//   - The full paths written, in the order of files.
//   - An error if any file cannot be written. In that case no destination
//     file has been touched unless the failure happened while renaming.
func (fm *FileManager) WriteAll(files []OutputFile) ([]string, error) {
	if err := fm.EnsureOutputDir(); err != nil {
		return nil, err
	}

	temps := make([]string, 0, len(files))
	cleanup := func() {
		for _, tmp := range temps {
			_ = os.Remove(tmp)
		}
	}

	// Stage every file.
	for _, f := range files {
		tmp, err := writeTemp(fm.Path(f.Name), f.Data)
		if err != nil {
			cleanup()
			return nil, err
		}
		temps = append(temps, tmp)
	}

	// Move them into place.
	paths := make([]string, 0, len(files))
	for i, f := range files {
		dest := fm.Path(f.Name)
		if err := os.Rename(temps[i], dest); err != nil {
			temps = temps[i:]
			cleanup()
			return paths, fmt.Errorf("failed to move %s into place: %w", dest, err)
		}
		paths = append(paths, dest)
	}

	return paths, nil
}

// writeTemp writes data to a temporary sibling of dest and returns its path.
func writeTemp(dest string, data []byte) (string, error) {
	tmp := filepath.Join(filepath.Dir(dest), fmt.Sprintf(".%s.%s.tmp", filepath.Base(dest), uuid.NewString()))

	file, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", tmp, err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("failed to write %s: %w", tmp, err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to close %s: %w", tmp, err)
	}

	return tmp, nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// RequireFile returns an error naming path when it is not an existing
// regular file.
func RequireFile(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("file '%s' not found", path)
	}
	if err != nil {
		return fmt.Errorf("file '%s' cannot be read: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("'%s' is not a regular file", path)
	}
	return nil
}
