// Package scan discovers the markdown documents a run will extract tasks
// from: a recursive walk from a root directory that skips hidden entries and
// honors gitignore-style exclusion files.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	ignore "github.com/sabhiram/go-gitignore"
)

// DefaultIgnoreName is the tool-specific exclusion file consulted in
// addition to .gitignore.
const DefaultIgnoreName = ".agmdignore"

// Document is one discovered markdown file with its content already read.
type Document struct {
	Path    string // relative to the scan root, slash-separated as walked
	AbsPath string
	ModTime time.Time
	Size    int64
	Content []byte
}

// Scan walks root and returns every markdown document under it in lexical
// path order. Hidden files and directories are skipped, as is anything
// matched by a root-level .gitignore or by the named tool ignore file
// (missing ignore files are fine).
func Scan(root, ignoreName string) ([]Document, error) {
	if ignoreName == "" {
		ignoreName = DefaultIgnoreName
	}
	matchers := loadIgnoreFiles(root, ".gitignore", ignoreName)

	var docs []Document
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if rel == "." {
			return nil
		}

		name := d.Name()
		if strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if matchedAny(matchers, rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(name), ".md") {
			return nil
		}
		if matchedAny(matchers, rel) {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			return fmt.Errorf("stating %s: %w", path, infoErr)
		}
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return fmt.Errorf("reading %s: %w", path, readErr)
		}
		abs, absErr := filepath.Abs(path)
		if absErr != nil {
			return fmt.Errorf("resolving %s: %w", path, absErr)
		}

		docs = append(docs, Document{
			Path:    filepath.ToSlash(rel),
			AbsPath: abs,
			ModTime: info.ModTime(),
			Size:    info.Size(),
			Content: content,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return docs, nil
}

// loadIgnoreFiles compiles whichever of the named exclusion files exist at
// the root of the walk.
func loadIgnoreFiles(root string, names ...string) []*ignore.GitIgnore {
	var matchers []*ignore.GitIgnore
	for _, name := range names {
		gi, err := ignore.CompileIgnoreFile(filepath.Join(root, name))
		if err != nil {
			continue
		}
		matchers = append(matchers, gi)
	}
	return matchers
}

func matchedAny(matchers []*ignore.GitIgnore, rel string) bool {
	for _, m := range matchers {
		if m.MatchesPath(rel) {
			return true
		}
	}
	return false
}
