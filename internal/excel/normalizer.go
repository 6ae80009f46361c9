package excel

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/angelglnd-coder/cler-vision-app/internal/model"
)

// fieldAliases maps display columns whose punctuation would otherwise be
// mangled by sanitizing.
var fieldAliases = map[string]string{
	"No.":           "number",
	"OD/OS":         "od_os",
	"K-Code":        "k_code",
	"P-Code":        "p_code",
	"Previous S.O#": "previous_so",
}

var nonWordRe = regexp.MustCompile(`[^\w$]`)

// safeKey returns the canonical fallback field name for an unmapped column.
func safeKey(col string) string {
	if alias, ok := fieldAliases[col]; ok {
		return alias
	}
	return nonWordRe.ReplaceAllString(col, "_")
}

// BuildRawRows turns the matrix into header-keyed string rows, starting
// below the header row and stopping at the first fully empty row.
func BuildRawRows(matrix [][]string, headerRow int) ([]string, []map[string]string) {
	if headerRow < 0 || headerRow >= len(matrix) {
		return nil, nil
	}
	headers := make([]string, len(matrix[headerRow]))
	for i, h := range matrix[headerRow] {
		headers[i] = strings.TrimSpace(h)
	}

	var rows []map[string]string
	for r := headerRow + 1; r < len(matrix); r++ {
		line := matrix[r]
		empty := true
		for _, v := range line {
			if strings.TrimSpace(v) != "" {
				empty = false
				break
			}
		}
		if empty {
			break
		}

		obj := make(map[string]string, len(headers))
		for c, h := range headers {
			if h == "" {
				continue
			}
			if c < len(line) {
				obj[h] = line[c]
			} else {
				obj[h] = ""
			}
		}
		rows = append(rows, obj)
	}
	return headers, rows
}

// ValidateHeaders compares found headers against the schema's column sets.
// Drift is informational only and never blocks an import.
func ValidateHeaders(headers []string, sc *model.Schema) (missing, extra, msgs []string) {
	found := make(map[string]bool, len(headers))
	for _, h := range headers {
		if k := normalizeKey(h); k != "" {
			found[k] = true
		}
	}

	for _, col := range sc.RequiredColumns {
		if !found[normalizeKey(col)] {
			missing = append(missing, col)
		}
	}

	allowed := make(map[string]bool)
	for _, col := range sc.RequiredColumns {
		allowed[normalizeKey(col)] = true
	}
	for _, col := range sc.OptionalColumns {
		allowed[normalizeKey(col)] = true
	}
	for _, h := range headers {
		k := normalizeKey(h)
		if k != "" && !allowed[k] {
			extra = append(extra, h)
		}
	}

	if len(missing) > 0 {
		msgs = append(msgs, fmt.Sprintf("missing %d column(s): %s", len(missing), strings.Join(missing, ", ")))
	}
	if len(extra) > 0 {
		msgs = append(msgs, fmt.Sprintf("found %d additional column(s): %s", len(extra), strings.Join(extra, ", ")))
	}
	return missing, extra, msgs
}

// NormalizeRows maps raw header-keyed rows onto canonical field names per
// the schema, coercing declared date columns to YYYY-MM-DD and declared
// numeric fields to float64. A numeric field that fails to parse keeps its
// string form for the calculators to report on.
func NormalizeRows(raws []map[string]string, sc *model.Schema) []model.Row {
	dateCols := make(map[string]bool, len(sc.DateFields))
	for _, c := range sc.DateFields {
		dateCols[c] = true
	}

	out := make([]model.Row, 0, len(raws))
	for _, raw := range raws {
		row := make(model.Row, len(sc.Columns))
		for _, col := range sc.Columns {
			key := sc.FieldMappings[col]
			if key == "" {
				key = safeKey(col)
			}
			v := strings.TrimSpace(raw[col])
			if v == "" {
				row[key] = nil
				continue
			}
			if dateCols[col] {
				row[key] = normalizeDate(v)
				continue
			}
			if sc.NumericFields[key] {
				if n, err := strconv.ParseFloat(v, 64); err == nil {
					row[key] = n
					continue
				}
			}
			row[key] = v
		}
		out = append(out, row)
	}
	return out
}

// excelEpochOffset is the day count between the 1900-system serial origin
// and the Unix epoch, including the historical leap-year correction.
const excelEpochOffset = 25569

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01-02-06",
	"Jan 2, 2006",
}

// normalizeDate accepts a spreadsheet serial or a textual date and returns
// the fixed YYYY-MM-DD form; unparseable input passes through trimmed.
func normalizeDate(v string) string {
	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		days := int64(serial) - excelEpochOffset
		t := time.Unix(days*86400, 0).UTC()
		return t.Format("2006-01-02")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return v
}
