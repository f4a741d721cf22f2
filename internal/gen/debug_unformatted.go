package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	// Not a .go file: the package must keep building while the sidecar exists.
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go.txt"

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
