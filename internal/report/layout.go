// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report lays out checklist responses as a sequence of document
// elements and renders them to PDF.
package report

import (
	"fmt"

	"github.com/pdiddy/claim-report/pkg/types"
)

// Citation is printed once, as the last element of every report.
const Citation = "Mongan J, Moy L, Kahn CE Jr. Checklist for Artificial Intelligence in Medical Imaging (CLAIM): a guide for authors and reviewers. Radiol Artif Intell 2020; 2(2). https://doi.org/10.1148/ryai.2020200029"

// Kind identifies the role of an element, which selects its style.
type Kind int

const (
	KindTitle Kind = iota
	KindSection
	KindSubsection
	KindQuestion
	KindAnswer
	KindAuthor
	KindAffiliation
	KindCitation
)

var kindNames = [...]string{
	KindTitle:       "title",
	KindSection:     "section",
	KindSubsection:  "subsection",
	KindQuestion:    "question",
	KindAnswer:      "answer",
	KindAuthor:      "author",
	KindAffiliation: "affiliation",
	KindCitation:    "citation",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Element is one block of text in the report.
type Element struct {
	Kind Kind
	Text string
}

// groupState tracks where the walk over records currently is.
type groupState int

const (
	noSection groupState = iota
	inSectionNoSubsection
	inSectionWithSubsection
)

// grouper decides when section and subsection headers are emitted.
//
// Section and subsection are compared independently. The tracked subsection
// only changes when a record carries a non-empty one, so a record without a
// subsection never clears it: a later record naming the same subsection
// again does not get a second header.
type grouper struct {
	state      groupState
	section    string
	subsection string
}

// step returns the headers to emit before rec and advances the state.
func (g *grouper) step(rec types.ResponseRecord) []Element {
	var out []Element
	if g.state == noSection || rec.Section != g.section {
		g.section = rec.Section
		out = append(out, Element{Kind: KindSection, Text: rec.Section})
	}
	if rec.Subsection != "" && rec.Subsection != g.subsection {
		g.subsection = rec.Subsection
		out = append(out, Element{Kind: KindSubsection, Text: rec.Subsection})
	}
	if rec.Subsection == "" {
		g.state = inSectionNoSubsection
	} else {
		g.state = inSectionWithSubsection
	}
	return out
}

// Layout builds the report elements for records, which must already be in
// catalog order.
func Layout(title string, records []types.ResponseRecord, author types.Author) []Element {
	elements := []Element{{Kind: KindTitle, Text: title}}

	var g grouper
	for _, rec := range records {
		elements = append(elements, g.step(rec)...)
		elements = append(elements,
			Element{Kind: KindQuestion, Text: fmt.Sprintf("%d. %s", rec.Ordinal, rec.Question)},
			Element{Kind: KindAnswer, Text: "Answer: " + rec.Answer},
		)
	}

	return append(elements,
		Element{Kind: KindAuthor, Text: "Author: " + author.Name},
		Element{Kind: KindAffiliation, Text: "Affiliation: " + author.Affiliation},
		Element{Kind: KindCitation, Text: Citation},
	)
}
