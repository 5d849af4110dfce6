// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/claim-report/pkg/types"
)

func sampleElements() []Element {
	records := []types.ResponseRecord{
		record(1, "INTRO", "", "Background", "Deep learning, CNN"),
		record(2, "METHODS", "A", "Design", types.NoResponse),
	}
	return Layout("CLAIM Checklist Report", records, types.Author{Name: "Jane Doe", Affiliation: "General Hospital"})
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, sampleElements(), Options{Title: "CLAIM Checklist Report", Author: "Jane Doe", Uncompressed: true})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "%PDF-"), "output should start with a PDF header")
	for _, want := range []string{
		"CLAIM Checklist Report",
		"INTRO",
		"1. Background",
		"Answer: Deep learning, CNN",
		"Author: Jane Doe",
		"Affiliation: General Hospital",
		"Page 1",
	} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "1. Background"), strings.Index(out, "Author: Jane Doe"))
}

func TestRenderPaginates(t *testing.T) {
	var records []types.ResponseRecord
	for i := 1; i <= 120; i++ {
		records = append(records, record(i, "S", "", "A question long enough to take a full line of text in the report body", "answer"))
	}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Layout("T", records, types.Author{}), Options{Uncompressed: true}))
	assert.Contains(t, buf.String(), "Page 2")
}

func TestRenderA4(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleElements(), Options{PageSize: types.PageA4}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestRenderUnknownKind(t *testing.T) {
	err := Render(&bytes.Buffer{}, []Element{{Kind: Kind(42), Text: "x"}}, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no style")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CLAIM_Report.pdf")

	require.NoError(t, WriteFile(path, sampleElements(), Options{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be renamed away")
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "CLAIM_Report.pdf")

	err := WriteFile(path, sampleElements(), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating temp file")
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCitationIsStable(t *testing.T) {
	assert.Equal(t,
		"Mongan J, Moy L, Kahn CE Jr. Checklist for Artificial Intelligence in Medical Imaging (CLAIM): a guide for authors and reviewers. Radiol Artif Intell 2020; 2(2). https://doi.org/10.1148/ryai.2020200029",
		Citation)
}
