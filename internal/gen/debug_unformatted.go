package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// unformattedSuffix replaces ".go" in sidecar names.
const unformattedSuffix = ".unformatted.go.txt"

// writeDebugUnformatted writes source that failed to format next to the
// intended output, as <name>.unformatted.go.txt. The .txt suffix keeps the
// package buildable while the sidecar exists. Failing to write it never hides
// the formatting error.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	debugName := strings.TrimSuffix(filename, ".go") + unformattedSuffix

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
