// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/claim-report/internal/catalog"
	"github.com/pdiddy/claim-report/internal/collect"
	"github.com/pdiddy/claim-report/pkg/types"
)

const scenarioCatalog = `sections:
  - name: INTRO
    questions:
      - Background
  - name: METHODS
    subsections:
      A:
        - Design
      B:
        - Data
`

func testConfig(t *testing.T) types.ReportConfig {
	t.Helper()
	cfg := types.DefaultReportConfig()
	cfg.OutputPath = filepath.Join(t.TempDir(), "CLAIM_Report.pdf")
	return cfg
}

func TestSession(t *testing.T) {
	cat, err := catalog.Parse([]byte(scenarioCatalog))
	require.NoError(t, err)
	cfg := testConfig(t)

	in := strings.NewReader("\n\n\nJane Doe\nGeneral Hospital\n")
	var out bytes.Buffer
	require.NoError(t, session(in, &out, cat, cfg))

	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	assert.True(t, strings.HasSuffix(out.String(), "CLAIM Report saved as "+cfg.OutputPath+"\n"))
	assert.Equal(t, 5, strings.Count(out.String(), "press Enter for default"))
}

func TestSessionDefaultCatalogPromptCount(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	cfg := testConfig(t)

	in := strings.NewReader(strings.Repeat("\n", cat.Len()+2))
	var out bytes.Buffer
	require.NoError(t, session(in, &out, cat, cfg))

	assert.Equal(t, cat.Len()+2, strings.Count(out.String(), "press Enter for default"))
	assert.Contains(t, out.String(), "42. Sources of funding")
}

func TestSessionInputClosedWritesNothing(t *testing.T) {
	cat, err := catalog.Parse([]byte(scenarioCatalog))
	require.NoError(t, err)
	cfg := testConfig(t)

	err = session(strings.NewReader("only one\n"), &bytes.Buffer{}, cat, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, collect.ErrInputClosed)

	_, statErr := os.Stat(cfg.OutputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSessionUnwritableOutput(t *testing.T) {
	cat, err := catalog.Parse([]byte(scenarioCatalog))
	require.NoError(t, err)
	cfg := testConfig(t)
	cfg.OutputPath = filepath.Join(t.TempDir(), "no-such-dir", "report.pdf")

	var out bytes.Buffer
	err = session(strings.NewReader("a\nb\nc\nd\ne\n"), &out, cat, cfg)
	require.Error(t, err)
	assert.NotContains(t, out.String(), "saved as")
}

func TestWriteCatalog(t *testing.T) {
	cat, err := catalog.Parse([]byte(scenarioCatalog))
	require.NoError(t, err)

	tests := []struct {
		format string
		check  func(t *testing.T, out string)
	}{
		{
			format: "text",
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "INTRO")
				assert.Contains(t, out, " 1. Background")
				assert.Contains(t, out, " 3. Data")
				assert.Contains(t, out, "3 questions")
				assert.Less(t, strings.Index(out, "METHODS"), strings.Index(out, " 2. Design"))
			},
		},
		{
			format: "yaml",
			check: func(t *testing.T, out string) {
				again, err := catalog.Parse([]byte(out))
				require.NoError(t, err)
				assert.Equal(t, cat.Entries(), again.Entries())
			},
		},
		{
			format: "json",
			check: func(t *testing.T, out string) {
				var decoded catalog.Catalog
				require.NoError(t, json.Unmarshal([]byte(out), &decoded))
				assert.Equal(t, cat.Entries(), decoded.Entries())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeCatalog(&buf, cat, tt.format))
			tt.check(t, buf.String())
		})
	}
}

func TestWriteCatalogUnknownFormat(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	err = writeCatalog(&bytes.Buffer{}, cat, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
