package source

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Resolve expands the given paths into a flat, sorted list of files. A file
// path passes through unchanged; a directory is walked recursively, skipping
// hidden directories such as .git. A path that is neither is an error.
func Resolve(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("invalid source %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if name := d.Name(); strings.HasPrefix(name, ".") && path != p {
					return filepath.SkipDir
				}
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", p, err)
		}
	}
	sort.Strings(files)
	return files, nil
}

// Load reads one file's text.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading source %s: %w", path, err)
	}
	return string(data), nil
}

// AskPath interactively asks for a source path when none was given on the
// command line.
func AskPath(in io.Reader, out io.Writer) (string, error) {
	if _, err := fmt.Fprint(out, "Path to source file or directory: "); err != nil {
		return "", err
	}
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("reading path: %w", err)
		}
		return "", fmt.Errorf("no path given")
	}
	path := strings.TrimSpace(scanner.Text())
	if path == "" {
		return "", fmt.Errorf("no path given")
	}
	return path, nil
}
