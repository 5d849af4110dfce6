// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collect prompts for checklist answers one line at a time and turns
// them into ordered response records.
package collect

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/claim-report/pkg/types"
)

// promptSuffix follows every prompt, numbered or not.
const promptSuffix = " (Provide a full answer or press Enter for default): "

// ErrInputClosed is returned when input ends before a prompt is answered.
var ErrInputClosed = errors.New("input closed")

// DefaultAnswer trims surrounding whitespace from raw and substitutes
// types.NoResponse when nothing is left.
func DefaultAnswer(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return types.NoResponse
	}
	return s
}

// Collector reads answers from in and writes prompts to out.
type Collector struct {
	in  *bufio.Reader
	out io.Writer

	number lipgloss.Style
	text   lipgloss.Style
	hint   lipgloss.Style
}

// New returns a Collector. Prompt styling follows the color profile of out,
// so plain writers receive plain text.
func New(in io.Reader, out io.Writer) *Collector {
	r := lipgloss.NewRenderer(out)
	return &Collector{
		in:     bufio.NewReader(in),
		out:    out,
		number: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		text:   r.NewStyle().Bold(true),
		hint:   r.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
}

// Responses prompts once per entry and returns one record per entry, in
// order, numbered from 1.
func (c *Collector) Responses(entries []types.CatalogEntry) ([]types.ResponseRecord, error) {
	records := make([]types.ResponseRecord, 0, len(entries))
	for i, e := range entries {
		n := i + 1
		answer, err := c.ask(c.number.Render(fmt.Sprintf("%d.", n)) + " " + c.text.Render(e.Question))
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", n, err)
		}
		records = append(records, types.ResponseRecord{
			Ordinal:    n,
			Question:   e.Question,
			Answer:     answer,
			Section:    e.Section,
			Subsection: e.Subsection,
		})
	}
	return records, nil
}

// Author prompts for the author's name and affiliation.
func (c *Collector) Author() (types.Author, error) {
	name, err := c.ask(c.text.Render("Author's Name:"))
	if err != nil {
		return types.Author{}, fmt.Errorf("author name: %w", err)
	}
	affiliation, err := c.ask(c.text.Render("Affiliation:"))
	if err != nil {
		return types.Author{}, fmt.Errorf("affiliation: %w", err)
	}
	return types.Author{Name: name, Affiliation: affiliation}, nil
}

// ask writes prompt and reads one line. A last line without a trailing
// newline still counts as an answer.
func (c *Collector) ask(prompt string) (string, error) {
	if _, err := io.WriteString(c.out, prompt+c.hint.Render(promptSuffix)); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return DefaultAnswer(line), nil
}
