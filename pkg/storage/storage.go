// Package storage wraps flat-file reads and writes for pipeline output.
package storage

import (
	"fmt"
	"os"
)

type Storage struct{}

// SaveFile writes content to filePath, overwriting any existing file.
func (s *Storage) SaveFile(filePath string, content []byte) error {
	err := os.WriteFile(filePath, content, 0644)
	if err != nil {
		return fmt.Errorf("error saving file: %s", err)
	}

	return nil
}

// ReadFile reads the full contents of filePath.
func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %s", err)
	}
	return data, nil
}

// HasFile reports whether a file exists at fn.
func (s *Storage) HasFile(fn string) bool {
	_, err := os.Stat(fn)
	return err == nil || !os.IsNotExist(err)
}
