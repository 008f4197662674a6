package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes generated source to the output path, creating parent
// directories as needed. An empty path writes to standard output.
func WriteFile(content []byte, outputPath string) error {
	if outputPath == "" {
		_, err := os.Stdout.Write(content)
		return err
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", outputPath, err)
	}

	return nil
}
