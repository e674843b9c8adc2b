// Package scanner discovers markdown files under a root folder and loads
// them into a document collection. It owns all file-system and frontmatter
// concerns; the retrieval core only ever sees (path, text, metadata).
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mdcontext/mdcontext-mcp/pkg/types"
)

// MarkdownExtension is the file extension the scanner picks up.
const MarkdownExtension = ".md"

// maxDescriptionLen caps descriptions derived from the first paragraph.
const maxDescriptionLen = 200

var (
	// frontmatterPattern matches a leading YAML block delimited by ---.
	frontmatterPattern = regexp.MustCompile(`(?s)^---\s*\n(.*?)\n---\s*\n?`)

	// markdownPunct strips formatting characters from derived descriptions.
	markdownPunct = regexp.MustCompile("[#*_`\\[\\]()]")
)

// Scanner discovers markdown files under a fixed root directory.
type Scanner struct {
	root string
}

// New creates a Scanner for the given folder. The folder must exist and be
// a directory.
func New(folder string) (*Scanner, error) {
	abs, err := filepath.Abs(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve folder: %w", err)
	}
	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("folder does not exist: %s", folder)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", folder)
	}
	return &Scanner{root: abs}, nil
}

// Root returns the absolute root directory.
func (s *Scanner) Root() string {
	return s.root
}

// Scan walks the root recursively and loads every markdown file into a
// collection keyed by slash-separated relative path. Unreadable files are
// skipped with a warning rather than failing the scan.
func (s *Scanner) Scan() (*types.Collection, error) {
	coll := types.NewCollection()

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), MarkdownExtension) {
			return nil
		}

		doc, err := s.loadDocument(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", path, err)
			return nil
		}
		return coll.Add(doc)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", s.root, err)
	}
	return coll, nil
}

// loadDocument reads one file and derives its frontmatter and description.
func (s *Scanner) loadDocument(path string) (*types.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return nil, fmt.Errorf("failed to relativize path: %w", err)
	}

	content := string(raw)
	fm := parseFrontmatter(content)

	doc := &types.Document{
		Path:        filepath.ToSlash(rel),
		Content:     content,
		Frontmatter: fm,
		Description: deriveDescription(content, fm),
	}
	return doc, nil
}

// parseFrontmatter extracts a leading YAML block into a flat string map.
// Returns nil when no block is present or the block does not parse.
func parseFrontmatter(content string) map[string]string {
	m := frontmatterPattern.FindStringSubmatch(content)
	if m == nil {
		return nil
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal([]byte(m[1]), &raw); err != nil {
		return nil
	}

	fm := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			fm[key] = v
		case nil:
			fm[key] = ""
		default:
			fm[key] = fmt.Sprint(v)
		}
	}
	return fm
}

// deriveDescription prefers a frontmatter description, falling back to the
// first paragraph with markdown formatting stripped and length capped.
func deriveDescription(content string, fm map[string]string) string {
	if desc, ok := fm["description"]; ok && desc != "" {
		return desc
	}

	body := frontmatterPattern.ReplaceAllString(content, "")
	for _, para := range strings.Split(body, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		para = markdownPunct.ReplaceAllString(para, "")
		para = strings.TrimSpace(strings.Join(strings.Fields(para), " "))
		if para == "" {
			continue
		}
		if len(para) > maxDescriptionLen {
			para = para[:maxDescriptionLen]
		}
		return para
	}
	return ""
}
