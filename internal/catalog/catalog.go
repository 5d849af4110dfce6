// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog defines the checklist question tree and flattens it into
// ordered catalog entries. The built-in CLAIM checklist is embedded as YAML;
// alternative catalogs of the same shape can be loaded from disk.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/claim-report/pkg/types"
)

//go:embed claim.yaml
var claimYAML []byte

// ErrEmptyCatalog is returned when a catalog declares no questions.
var ErrEmptyCatalog = errors.New("catalog has no questions")

// Catalog is an ordered tree of sections, optional subsections and questions.
type Catalog struct {
	Sections []Section `json:"sections" yaml:"sections"`
}

// Section is a top-level checklist heading. It holds either a flat question
// list or an ordered set of subsections, never both.
type Section struct {
	Name        string      `json:"name" yaml:"name"`
	Questions   []string    `json:"questions,omitempty" yaml:"questions,omitempty"`
	Subsections Subsections `json:"subsections,omitempty" yaml:"subsections,omitempty"`
}

// Subsection is a named group of questions inside a section.
type Subsection struct {
	Name      string   `json:"name" yaml:"name"`
	Questions []string `json:"questions" yaml:"questions"`
}

// Subsections decodes from a YAML mapping of subsection name to question
// list, keeping the mapping's declaration order.
type Subsections []Subsection

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Subsections) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: subsections must be a mapping of name to questions", value.Line)
	}
	out := make(Subsections, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		var questions []string
		if err := val.Decode(&questions); err != nil {
			return fmt.Errorf("subsection %q: %w", key.Value, err)
		}
		out = append(out, Subsection{Name: key.Value, Questions: questions})
	}
	*s = out
	return nil
}

// MarshalYAML implements yaml.Marshaler, writing subsections back out as an
// ordered mapping.
func (s Subsections) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, sub := range s {
		var val yaml.Node
		if err := val.Encode(sub.Questions); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: sub.Name},
			&val,
		)
	}
	return node, nil
}

// Default returns the built-in CLAIM checklist.
func Default() (*Catalog, error) {
	c, err := Parse(claimYAML)
	if err != nil {
		return nil, fmt.Errorf("built-in catalog: %w", err)
	}
	return c, nil
}

// Load reads and validates a catalog YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every section, subsection and question is named and
// that each section uses exactly one of the two shapes.
func (c *Catalog) Validate() error {
	for i, sec := range c.Sections {
		if sec.Name == "" {
			return fmt.Errorf("section %d: empty name", i+1)
		}
		hasFlat, hasSubs := len(sec.Questions) > 0, len(sec.Subsections) > 0
		switch {
		case hasFlat && hasSubs:
			return fmt.Errorf("section %q: has both questions and subsections", sec.Name)
		case !hasFlat && !hasSubs:
			return fmt.Errorf("section %q: has no questions", sec.Name)
		}
		if err := checkQuestions(sec.Name, sec.Questions); err != nil {
			return err
		}
		for _, sub := range sec.Subsections {
			if sub.Name == "" {
				return fmt.Errorf("section %q: subsection with empty name", sec.Name)
			}
			if len(sub.Questions) == 0 {
				return fmt.Errorf("section %q: subsection %q has no questions", sec.Name, sub.Name)
			}
			if err := checkQuestions(sec.Name+" / "+sub.Name, sub.Questions); err != nil {
				return err
			}
		}
	}
	if c.Len() == 0 {
		return ErrEmptyCatalog
	}
	return nil
}

func checkQuestions(where string, questions []string) error {
	for i, q := range questions {
		if q == "" {
			return fmt.Errorf("%s: question %d is empty", where, i+1)
		}
	}
	return nil
}

// Entries flattens the tree into leaf questions in declaration order.
// The returned slice is freshly allocated on every call.
func (c *Catalog) Entries() []types.CatalogEntry {
	entries := make([]types.CatalogEntry, 0, c.Len())
	for _, sec := range c.Sections {
		for _, q := range sec.Questions {
			entries = append(entries, types.CatalogEntry{Section: sec.Name, Question: q})
		}
		for _, sub := range sec.Subsections {
			for _, q := range sub.Questions {
				entries = append(entries, types.CatalogEntry{
					Section:    sec.Name,
					Subsection: sub.Name,
					Question:   q,
				})
			}
		}
	}
	return entries
}

// Len returns the number of leaf questions.
func (c *Catalog) Len() int {
	n := 0
	for _, sec := range c.Sections {
		n += len(sec.Questions)
		for _, sub := range sec.Subsections {
			n += len(sub.Questions)
		}
	}
	return n
}
