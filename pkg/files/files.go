package files

import (
	"bufio"
	"io/fs"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

const MaxResults = 50

// Patterns are the document types the backend can convert.
var Patterns = []string{
	"**/*.pdf",
	"**/*.docx",
}

var defaultIgnoreDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"__pycache__":  true,
	".venv":        true,
	"vendor":       true,
}

type Match struct {
	Path string
	Name string
}

// Discover walks fsys and returns the documents matching Patterns, honoring
// .gitignore files along the way.
func Discover(fsys fs.FS) []Match {
	var result []Match

	patterns := loadGitignore(fsys, nil)
	matcher := gitignore.NewMatcher(patterns)

	fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		parts := strings.Split(p, "/")

		if d.IsDir() {
			if p == "." {
				return nil
			}

			name := d.Name()

			if strings.HasPrefix(name, ".") || defaultIgnoreDirs[name] {
				return fs.SkipDir
			}

			if matcher.Match(parts, true) {
				return fs.SkipDir
			}

			if nested := loadGitignore(fsys, parts); len(nested) > 0 {
				patterns = append(patterns, nested...)
				matcher = gitignore.NewMatcher(patterns)
			}

			return nil
		}

		if strings.HasPrefix(d.Name(), ".") || matcher.Match(parts, false) {
			return nil
		}

		if !IsDocument(p) {
			return nil
		}

		result = append(result, Match{
			Path: p,
			Name: d.Name(),
		})

		return nil
	})

	return result
}

// IsDocument reports whether name matches one of the accepted patterns.
func IsDocument(name string) bool {
	name = strings.ToLower(name)

	for _, pattern := range Patterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}

	return false
}

// Filter does a case-insensitive substring match on name and path.
func Filter(matches []Match, query string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))

	var result []Match

	for _, m := range matches {
		if query == "" || strings.Contains(strings.ToLower(m.Path), query) {
			result = append(result, m)
		}

		if len(result) >= MaxResults {
			break
		}
	}

	return result
}

func loadGitignore(fsys fs.FS, domain []string) []gitignore.Pattern {
	name := path.Join(append(domain, ".gitignore")...)

	f, err := fsys.Open(name)

	if err != nil {
		return nil
	}

	defer f.Close()

	var patterns []gitignore.Pattern

	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		patterns = append(patterns, gitignore.ParsePattern(line, domain))
	}

	return patterns
}
