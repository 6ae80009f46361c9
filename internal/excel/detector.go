package excel

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/angelglnd-coder/cler-vision-app/internal/model"
)

// Detection scoring. A required signature column gates a schema; the rest
// only rank candidates.
const (
	scoreRequiredSignature  = 10.0
	scorePreferredSignature = 5.0
	scoreRequiredColumn     = 1.0
	scoreOptionalColumn     = 0.25

	// MinDetectionScore is the floor below which detection fails.
	MinDetectionScore = 10.0

	// DefaultScanRows is how many leading rows are tried as header rows.
	DefaultScanRows = 5
)

var keyStripRe = regexp.MustCompile(`[.\s_/#]+`)

// normalizeKey folds a header cell into a comparison key: trimmed,
// lowercased, with . _ / # and whitespace removed.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return keyStripRe.ReplaceAllString(s, "")
}

// Detect scans the first scanRows rows of the matrix against every schema
// and returns the best header-row/schema pair. Ties keep the first match.
func Detect(matrix [][]string, schemas []*model.Schema, scanRows int) model.DetectionResult {
	if scanRows <= 0 {
		scanRows = DefaultScanRows
	}
	best := model.DetectionResult{HeaderRow: -1, Score: -1}

	limit := scanRows
	if limit > len(matrix) {
		limit = len(matrix)
	}
	for i := 0; i < limit; i++ {
		row := matrix[i]
		set := make(map[string]bool, len(row))
		for _, cell := range row {
			if k := normalizeKey(cell); k != "" {
				set[k] = true
			}
		}

		for _, sc := range schemas {
			score := 0.0

			foundSig := 0
			for _, sig := range sc.RequiredSignatures {
				if set[normalizeKey(sig)] {
					foundSig++
					score += scoreRequiredSignature
				}
			}
			// Incidental overlap with data columns must not select a
			// schema: at least one required signature has to be present.
			if foundSig == 0 {
				continue
			}

			for _, sig := range sc.PreferredSignatures {
				if set[normalizeKey(sig)] {
					score += scorePreferredSignature
				}
			}
			for _, col := range sc.RequiredColumns {
				if set[normalizeKey(col)] {
					score += scoreRequiredColumn
				}
			}
			for _, col := range sc.OptionalColumns {
				if set[normalizeKey(col)] {
					score += scoreOptionalColumn
				}
			}

			if score > best.Score {
				best = model.DetectionResult{
					HeaderRow: i,
					Score:     score,
					Schema:    sc,
					Headers:   row,
				}
			}
		}
	}

	return best
}

// DetectionFailure builds the diagnostics for a failed detection.
func DetectionFailure(schemas []*model.Schema) []string {
	names := make([]string, 0, len(schemas))
	for _, s := range schemas {
		names = append(names, s.Name)
	}
	return []string{
		fmt.Sprintf("could not detect file type; tried schemas: %s", strings.Join(names, ", ")),
		"need at least one signature column in the first rows",
	}
}
