package model

import "strconv"

// Row is a normalized spreadsheet row: canonical field name → scalar value
// (string, float64 or nil). Owned by the pipeline run that created it.
type Row map[string]any

// FieldResult is one computed optical field: either a value or an error
// reason, never both. Raw keeps the unrounded value for chained formulas.
type FieldResult struct {
	Value float64
	Raw   float64
	Valid bool
	Err   string
}

// Fields is the output vector of one calculator run, keyed by field name.
type Fields map[string]FieldResult

// Clone returns a shallow copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// String returns the field as a trimmed string, or "" when absent/nil.
func (r Row) String(field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}
