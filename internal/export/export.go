// Package export writes rendered documents as downloadable text artifacts.
package export

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	FileName = "optimized_prompt.txt"
	MIMEType = "text/plain"
)

// ContentType is the header value used when serving a document.
const ContentType = MIMEType + "; charset=utf-8"

// Save writes document to dir/optimized_prompt.txt, creating dir, and returns
// the written path. An empty dir means the working directory.
func Save(dir, document string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", FileName, err)
	}
	return path, nil
}

// ContentDisposition marks a response as a file download.
func ContentDisposition() string {
	return fmt.Sprintf("attachment; filename=\"%s\"", FileName)
}
