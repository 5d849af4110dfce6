// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/pdiddy/claim-report/pkg/types"
)

// Page geometry in points.
const (
	margin       = 72.0
	footerOffset = -40.0
	fontFamily   = "Helvetica"
)

// style is the presentation of one element kind. Sizes are in points.
type style struct {
	size        float64
	leading     float64
	bold        bool
	color       [3]int
	align       string
	spaceBefore float64
	spaceAfter  float64
}

var styles = map[Kind]style{
	KindTitle:       {size: 16, leading: 20, bold: true, align: "C", spaceAfter: 20},
	KindSection:     {size: 11, leading: 14, bold: true, color: [3]int{0x2E, 0x4A, 0x7D}, spaceBefore: 10, spaceAfter: 22},
	KindSubsection:  {size: 10, leading: 12, bold: true, color: [3]int{0x6A, 0x8D, 0xBF}, spaceBefore: 8, spaceAfter: 18},
	KindQuestion:    {size: 10, leading: 12, spaceAfter: 4},
	KindAnswer:      {size: 10, leading: 12, color: [3]int{0x55, 0x55, 0x55}, spaceAfter: 12},
	KindAuthor:      {size: 10, leading: 12, spaceBefore: 24},
	KindAffiliation: {size: 10, leading: 12, spaceAfter: 24},
	KindCitation:    {size: 8, leading: 10, spaceBefore: 24},
}

// Options control page setup and document metadata.
type Options struct {
	PageSize types.PageSize
	Title    string
	Author   string

	// Uncompressed leaves page content streams readable; used by tests.
	Uncompressed bool
}

// Render draws elements onto pages and writes the finished PDF to w.
func Render(w io.Writer, elements []Element, opts Options) error {
	size := string(opts.PageSize)
	if size == "" {
		size = string(types.PageLetter)
	}
	pdf := fpdf.New("P", "pt", size, "")
	pdf.SetCompression(!opts.Uncompressed)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	if opts.Author != "" {
		pdf.SetAuthor(opts.Author, true)
	}
	pdf.SetCreator("claim-report", true)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(footerOffset)
		pdf.SetFont(fontFamily, "", 8)
		pdf.SetTextColor(0x88, 0x88, 0x88)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	for _, el := range elements {
		st, ok := styles[el.Kind]
		if !ok {
			return fmt.Errorf("no style for element kind %s", el.Kind)
		}
		if st.spaceBefore > 0 {
			pdf.Ln(st.spaceBefore)
		}
		fontStyle := ""
		if st.bold {
			fontStyle = "B"
		}
		pdf.SetFont(fontFamily, fontStyle, st.size)
		pdf.SetTextColor(st.color[0], st.color[1], st.color[2])
		align := st.align
		if align == "" {
			align = "L"
		}
		pdf.MultiCell(0, st.leading, tr(el.Text), "", align, false)
		if st.spaceAfter > 0 {
			pdf.Ln(st.spaceAfter)
		}
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("rendering PDF: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// WriteFile renders elements in memory and moves the finished PDF into place
// at path, so a failed run never leaves a partial file behind.
func WriteFile(path string, elements []Element, opts Options) error {
	var buf bytes.Buffer
	if err := Render(&buf, elements, opts); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".claim-report-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(buf.Bytes())
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing report: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting report permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
