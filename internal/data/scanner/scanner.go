// Package scanner locates day-log files and watches them for changes.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fleetlog/go-hos-timeline/internal/util"
)

// FileScanner scans day-log files in the specified directory
type FileScanner struct {
	baseDir string
}

// NewFileScanner creates a new FileScanner instance
func NewFileScanner(baseDir string) *FileScanner {
	return &FileScanner{baseDir: baseDir}
}

// Scan walks the directory and returns all .jsonl day-log paths
func (s *FileScanner) Scan() ([]string, error) {
	start := time.Now()
	var files []string

	util.LogDebug(fmt.Sprintf("Start scanning directory: %s", s.baseDir))

	err := filepath.Walk(s.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			util.LogDebug(fmt.Sprintf("Skip path (error): %s - %v", path, err))
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(path), ".jsonl") {
			files = append(files, path)
		}
		return nil
	})

	util.LogDebug(fmt.Sprintf("Scan completed in %v, found %d day-log files", time.Since(start), len(files)))
	return files, err
}
