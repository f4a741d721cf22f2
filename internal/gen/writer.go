package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"shape-generator/internal/common"
	"shape-generator/internal/plan"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files. Files go to their package
// directory unless outputDir is set, which is created if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	for _, file := range files {
		outputPath := file.Path(outputDir)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", outputPath, err)
		}
	}

	return nil
}

// Path returns where the file is written, under outputDir when set.
func (f GeneratedFile) Path(outputDir string) string {
	dir := f.Dir
	if outputDir != "" {
		dir = outputDir
	}

	return filepath.Join(dir, f.Filename)
}

// Stale returns the paths whose content on disk differs from files, plus
// generated files of the plan's packages that would no longer be written.
func Stale(p *plan.Plan, files []GeneratedFile) ([]string, error) {
	var stale []string

	for _, file := range files {
		path := file.Path("")

		current, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) || (err == nil && !bytes.Equal(current, file.Content)) {
			stale = append(stale, path)
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	orphans, err := Orphans(p, files)
	if err != nil {
		return nil, err
	}

	return append(stale, orphans...), nil
}

// Orphans returns generated files left in packages that no longer have
// anything to generate. Only files carrying the generated header count.
func Orphans(p *plan.Plan, files []GeneratedFile) ([]string, error) {
	written := make(map[string]bool, len(files))
	for _, f := range files {
		written[f.Package] = true
	}

	var out []string

	for _, pp := range p.Packages {
		if written[pp.Path] || pp.Dir == "" {
			continue
		}

		path := filepath.Join(pp.Dir, p.Filename)

		content, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		if bytes.HasPrefix(content, []byte(common.GeneratedHeader)) {
			out = append(out, path)
		}
	}

	return out, nil
}

// RemoveOrphans deletes the files returned by Orphans.
func RemoveOrphans(p *plan.Plan, files []GeneratedFile) ([]string, error) {
	orphans, err := Orphans(p, files)
	if err != nil {
		return nil, err
	}

	for _, path := range orphans {
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("removing %s: %w", path, err)
		}
	}

	return orphans, nil
}
