package types

// PageSize names a supported paper size for the rendered report.
type PageSize string

const (
	PageLetter PageSize = "Letter"
	PageA4     PageSize = "A4"
)

// ReportConfig holds settings for a checklist session and its report.
type ReportConfig struct {
	// OutputPath is where the PDF report is written (default "CLAIM_Report.pdf").
	OutputPath string `json:"output" yaml:"output" mapstructure:"output"`

	// CatalogPath optionally points at an alternative catalog YAML file.
	// Empty selects the built-in CLAIM checklist.
	CatalogPath string `json:"catalog,omitempty" yaml:"catalog,omitempty" mapstructure:"catalog"`

	// Title is the heading printed at the top of the report.
	Title string `json:"title" yaml:"title" mapstructure:"title"`

	// PageSize selects the paper size: Letter or A4.
	PageSize PageSize `json:"page_size" yaml:"page_size" mapstructure:"page_size"`
}

// DefaultReportConfig returns the settings used when nothing is configured.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		OutputPath: "CLAIM_Report.pdf",
		Title:      "CLAIM Checklist Report",
		PageSize:   PageLetter,
	}
}

// WithDefaults fills zero-valued fields from DefaultReportConfig.
func (c ReportConfig) WithDefaults() ReportConfig {
	d := DefaultReportConfig()
	if c.OutputPath == "" {
		c.OutputPath = d.OutputPath
	}
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.PageSize == "" {
		c.PageSize = d.PageSize
	}
	return c
}
