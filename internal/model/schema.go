package model

// Schema describes one known spreadsheet layout: how to recognize it and how
// to map its display columns onto canonical field names.
type Schema struct {
	ID      string
	Name    string
	Version string

	// Signature columns drive detection. Required signatures gate a schema
	// (at least one must be present); preferred ones only add score.
	RequiredSignatures  []string
	PreferredSignatures []string

	// Display column lists as they appear in the workbook.
	Columns         []string
	RequiredColumns []string
	OptionalColumns []string

	// FieldMappings maps a display column to its canonical field name.
	// Columns without a mapping fall back to a sanitized identifier.
	FieldMappings map[string]string

	// NumericFields holds canonical field names whose cell values are
	// coerced to float64 during normalization.
	NumericFields map[string]bool
	DateFields    []string

	Processing ProcessingFlags
}

// ProcessingFlags controls which pipeline stages apply to a schema.
type ProcessingFlags struct {
	NeedsCalculation  bool
	NeedsWOGeneration bool

	// Calculator pins the calculator family for every row of the layout.
	// Empty means the row's device column selects it.
	Calculator string
}

// DetectionResult is the outcome of scanning a cell matrix for a header row.
type DetectionResult struct {
	HeaderRow int
	Score     float64
	Schema    *Schema
	Headers   []string
}

// Usable reports whether detection produced a workable schema match.
func (d DetectionResult) Usable(minScore float64) bool {
	return d.Schema != nil && d.HeaderRow >= 0 && d.Score >= minScore
}
