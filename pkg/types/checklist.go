// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// NoResponse replaces any answer that is empty after trimming whitespace.
const NoResponse = "No response provided"

// CatalogEntry is one leaf question of the checklist together with the
// section and (optional) subsection it belongs to.
type CatalogEntry struct {
	// Section is the top-level heading, e.g. "METHODS". Never empty.
	Section string `json:"section" yaml:"section"`

	// Subsection is the optional second-level heading, e.g. "Ground Truth".
	// Empty for sections that hold a flat question list.
	Subsection string `json:"subsection,omitempty" yaml:"subsection,omitempty"`

	// Question is the checklist item text. Never empty.
	Question string `json:"question" yaml:"question"`
}

// ResponseRecord is one collected answer with its question and position.
type ResponseRecord struct {
	// Ordinal is the 1-based question number, global across all sections.
	Ordinal int `json:"ordinal" yaml:"ordinal"`

	Question   string `json:"question" yaml:"question"`
	Answer     string `json:"answer" yaml:"answer"`
	Section    string `json:"section" yaml:"section"`
	Subsection string `json:"subsection,omitempty" yaml:"subsection,omitempty"`
}

// Author identifies the person filling in the checklist.
type Author struct {
	// Name is the author's display name.
	Name string `json:"name" yaml:"name"`

	// Affiliation is the author's institutional affiliation.
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
}
