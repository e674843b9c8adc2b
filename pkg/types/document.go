package types

import "errors"

// Document represents a single markdown file known to a retrieval session.
// Documents are immutable once scanned; the retrieval core only reads them.
type Document struct {
	// Path is the slash-separated path relative to the knowledge-base root.
	// It is the document's stable identifier, unique within a Collection.
	Path string

	// Content is the raw file text, including any frontmatter block.
	Content string

	// Frontmatter holds key/value pairs parsed from a leading YAML block,
	// if one was present.
	Frontmatter map[string]string

	// Description is a short summary derived from frontmatter or the first
	// paragraph. May be empty.
	Description string
}

// Validate checks if the document is structurally valid.
func (d *Document) Validate() error {
	if d.Path == "" {
		return errors.New("document path is required")
	}
	return nil
}

// Collection is the ordered set of all documents visible to one retrieval
// session. Document paths are unique within a collection.
type Collection struct {
	docs   []*Document
	byPath map[string]*Document
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{byPath: make(map[string]*Document)}
}

// Add appends a document, enforcing path uniqueness.
func (c *Collection) Add(doc *Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	if _, exists := c.byPath[doc.Path]; exists {
		return ErrDuplicateDocument
	}
	c.docs = append(c.docs, doc)
	c.byPath[doc.Path] = doc
	return nil
}

// Get returns the document with the given path, or DocumentNotFoundError.
func (c *Collection) Get(path string) (*Document, error) {
	doc, ok := c.byPath[path]
	if !ok {
		return nil, &DocumentNotFoundError{Path: path}
	}
	return doc, nil
}

// Documents returns all documents in insertion order.
func (c *Collection) Documents() []*Document {
	return c.docs
}

// Len returns the number of documents in the collection.
func (c *Collection) Len() int {
	return len(c.docs)
}
