package calc

import (
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/angelglnd-coder/cler-vision-app/internal/model"
)

// epsilon guards every division in the formula chain. A denominator below
// it is reported as a field error instead of producing Inf/NaN.
const epsilon = 1e-12

// toNum converts a row scalar to a float. Comma decimal separators are
// accepted the way the order sheets use them.
func toNum(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// toKey normalizes a scalar into a lookup key: numeric values collapse to
// their shortest form ("9.40" and 9.4 share a key), everything else trims.
func toKey(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return ""
		}
		if n, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		return s
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}

// round2 rounds to 2 decimals, half away from zero, matching sheet ROUND().
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ok(v float64) model.FieldResult {
	return model.FieldResult{Value: round2(v), Raw: v, Valid: true}
}

func fail(reason string) model.FieldResult {
	return model.FieldResult{Err: reason}
}

// toricityInfo is the resolved (value, offset) pair behind a toricity code.
type toricityInfo struct {
	Value  float64
	Offset float64
}

// toricityCodes maps the short order-sheet codes to curvature modifiers.
var toricityCodes = map[string]toricityInfo{
	"pj":  {Value: 0.75, Offset: 0.0},
	"tor": {Value: 1.25, Offset: 0.0},
	"x":   {Value: 1.75, Offset: 0.5},
	"s":   {Value: 0.0, Offset: 0.0},
	"p":   {Value: 1.0, Offset: 0.0},
	"t":   {Value: 1.5, Offset: 0.0},
	"ti":  {Value: 1.75, Offset: 0.0},
	"to":  {Value: 2.0, Offset: 0.0},
	"ty":  {Value: 2.25, Offset: 0.0},
	"sx":  {Value: 2.5, Offset: 0.0},
	"xs":  {Value: 2.75, Offset: 0.0},
	"xx":  {Value: 3.0, Offset: 0.0},
	"x1":  {Value: 3.25, Offset: 0.0},
	"x2":  {Value: 3.5, Offset: 0.0},
	"x3":  {Value: 3.75, Offset: 0.0},
	"x4":  {Value: 4.0, Offset: 0.0},
}

// Toricity is the resolved astigmatism modifier for one row.
type Toricity struct {
	Source   string // "value", "code" or "none"
	Code     string
	Value    float64
	HasValue bool
	Offset   float64
}

// resolveToricity prefers an explicit numeric value (+optional offset),
// then a known code, then no toricity.
func resolveToricity(code, value, offset any) Toricity {
	if v, okv := toNum(value); okv {
		off, _ := toNum(offset)
		return Toricity{Source: "value", Value: v, HasValue: true, Offset: off}
	}
	key := strings.ToLower(strings.TrimSpace(toStr(code)))
	if key != "" {
		if info, found := toricityCodes[key]; found {
			return Toricity{Source: "code", Code: key, Value: info.Value, HasValue: true, Offset: info.Offset}
		}
	}
	return Toricity{Source: "none"}
}

func toStr(v any) string {
	if s, isStr := v.(string); isStr {
		return s
	}
	return ""
}

// RequiredOutputFields is the fixed output contract every calculator
// variant must populate.
var RequiredOutputFields = []string{
	"BC1_BC2",
	"PW1_PW2",
	"OZ1_OZ2",
	"RC1_radius",
	"RC1_tor",
	"AC1_radius",
	"AC1_tor",
	"AC2_radius",
	"AC2_tor",
	"AC3_radius",
	"AC3_tor",
	"RC1_width",
	"AC1_width",
	"AC2_width",
	"AC3_width",
	"PC_width",
	"PC1_radius",
	"PC2_radius",
	"PC_radius",
	"LensPower",
}

// ValidateOutputShape flags contract fields a variant failed to populate.
func ValidateOutputShape(result model.Fields, calculatorID string) model.Fields {
	var missing []string
	for _, f := range RequiredOutputFields {
		if _, present := result[f]; !present {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		log.Printf("calculator %s missing fields: %s", calculatorID, strings.Join(missing, ", "))
	}
	return result
}

// failAll returns the whole output contract errored with one reason.
func failAll(reason string) model.Fields {
	out := make(model.Fields, len(RequiredOutputFields))
	for _, f := range RequiredOutputFields {
		out[f] = fail(reason)
	}
	return out
}
