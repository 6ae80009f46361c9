package calc

import (
	"fmt"

	"github.com/angelglnd-coder/cler-vision-app/internal/model"
)

// lookupCalculator is the table-driven calculator family: a K/P code pair
// resolves to a design code, the design code to its constants, and the
// (diameter, optical zone) pair to zone widths.
type lookupCalculator struct {
	id   string
	name string

	typeChart TypeChart
	ref1      Ref1
	ref2      Ref2
	ac2Steps  []eStep
	ac3Steps  []eStep

	eMin, eMax float64

	pcRadius  float64
	lensPower float64
	rc1Width  float64
	pcWidth   float64
}

// LookupOverrides replaces individual tables or defaults of a lookup
// family, mainly for tests and table revisions.
type LookupOverrides struct {
	TypeChart TypeChart
	Ref1      Ref1
	Ref2      Ref2
	AC2Steps  []eStep
	AC3Steps  []eStep
	PCRadius  *float64
	LensPower *float64
}

func (c *lookupCalculator) applyOverrides(o LookupOverrides) {
	if o.TypeChart != nil {
		c.typeChart = o.TypeChart
	}
	if o.Ref1 != nil {
		c.ref1 = o.Ref1
	}
	if o.Ref2 != nil {
		c.ref2 = o.Ref2
	}
	if o.AC2Steps != nil {
		c.ac2Steps = o.AC2Steps
	}
	if o.AC3Steps != nil {
		c.ac3Steps = o.AC3Steps
	}
	if o.PCRadius != nil {
		c.pcRadius = *o.PCRadius
	}
	if o.LensPower != nil {
		c.lensPower = *o.LensPower
	}
}

func (c *lookupCalculator) ID() string   { return c.id }
func (c *lookupCalculator) Name() string { return c.name }

// codeByKP resolves the design code for a K/P pair.
func (c *lookupCalculator) codeByKP(k, p any) string {
	if byP, found := c.typeChart[toKey(k)]; found {
		return byP[toKey(p)]
	}
	return ""
}

// kpByCode is the reverse type-chart lookup for rows that carry a design
// code but no K/P pair.
func (c *lookupCalculator) kpByCode(code string) (k, p string) {
	for kKey, byP := range c.typeChart {
		for pKey, cd := range byP {
			if cd == code {
				return kKey, pKey
			}
		}
	}
	return "", ""
}

// ComputeRow runs the full formula chain for one normalized row.
func (c *lookupCalculator) ComputeRow(row model.Row) model.Fields {
	kIn := firstPresent(row, "K_Code", "k_code")
	pIn := firstPresent(row, "P_Code", "p_code")
	diam := firstPresent(row, "Diam", "DIAM")
	codeIn := firstPresent(row, "CODE", "Type")
	eIn := firstPresent(row, "eValue")

	e, haveE := toNum(eIn)
	if !haveE || e < c.eMin || e > c.eMax {
		return failAll(fmt.Sprintf("invalid eValue=%v, expected %.2f-%.2f", eIn, c.eMin, c.eMax))
	}

	code := toKey(codeIn)
	kEff, pEff := kIn, pIn
	if code == "" {
		if kEff != nil && pEff != nil {
			code = c.codeByKP(kEff, pEff)
		}
	} else if kEff == nil || pEff == nil {
		kFound, pFound := c.kpByCode(code)
		if kEff == nil && kFound != "" {
			kEff = kFound
		}
		if pEff == nil && pFound != "" {
			pEff = pFound
		}
	}

	k, haveK := toNum(kEff)
	p, haveP := toNum(pEff)

	ref1Rec, haveRef1 := c.ref1[code]

	tor := c.resolveRowToricity(row)

	bc := computeBC1BC2(k, p, ref1Rec.Jessen, haveK && haveP && haveRef1)

	pw := fail("missing JESSEN")
	oz := fail("missing O.Z.")
	if haveRef1 {
		pw = ok(ref1Rec.Jessen)
		oz = ok(ref1Rec.OZ)
	}

	rc1Radius := computeRC1Radius(k, p, ref1Rec.FX, ref1Rec.Jessen, tor.Offset, haveK && haveP && haveRef1)
	rc1Tor := computeRC1Tor(rc1Radius, tor)

	ac1Radius := computeAC1Radius(k, tor.Offset, haveK)
	ac1Tor := computeAC1Tor(k, haveK, tor)

	ac2Radius, ac2Tor := computeZoneOffset(ac1Radius, ac1Tor, e, c.ac2Steps, "AC2")
	ac3Radius, ac3Tor := computeZoneOffset(ac1Radius, ac1Tor, e, c.ac3Steps, "AC3")

	ref2Vals, ref2Found := Ref2Widths{}, false
	if haveRef1 {
		ref2Vals, ref2Found = ref2Lookup(c.ref2, diam, ref1Rec.OZ)
	}

	out := model.Fields{
		"BC1_BC2":    bc,
		"PW1_PW2":    pw,
		"OZ1_OZ2":    oz,
		"RC1_radius": rc1Radius,
		"RC1_tor":    rc1Tor,
		"AC1_radius": ac1Radius,
		"AC1_tor":    ac1Tor,
		"AC2_radius": ac2Radius,
		"AC2_tor":    ac2Tor,
		"AC3_radius": ac3Radius,
		"AC3_tor":    ac3Tor,
		"PC1_radius": ok(c.pcRadius),
		"PC2_radius": ok(c.pcRadius),
		"PC_radius":  ok(c.pcRadius),
		"LensPower":  ok(c.lensPower),
	}
	for f, r := range computeWidths(ref2Vals, ref2Found, c.rc1Width, c.pcWidth) {
		out[f] = r
	}
	return ValidateOutputShape(out, c.id)
}

// ComputeAll runs ComputeRow over a batch in row order.
func (c *lookupCalculator) ComputeAll(rows []model.Row) []model.Fields {
	out := make([]model.Fields, len(rows))
	for i, r := range rows {
		out[i] = c.ComputeRow(r)
	}
	return out
}

// resolveRowToricity reads the explicit toricity fields and falls back to
// the Cyl column: numeric Cyl is a value, textual Cyl is a code.
func (c *lookupCalculator) resolveRowToricity(row model.Row) Toricity {
	code := firstPresent(row, "toricity_code")
	value := firstPresent(row, "toricity_value")
	offset := firstPresent(row, "toricity_offset")
	if code == nil && value == nil {
		cyl := firstPresent(row, "Cyl")
		if n, isNum := toNum(cyl); isNum {
			value = n
		} else if s, isStr := cyl.(string); isStr {
			code = s
		}
	}
	return resolveToricity(code, value, offset)
}

func firstPresent(row model.Row, fields ...string) any {
	for _, f := range fields {
		if v, found := row[f]; found && v != nil {
			return v
		}
	}
	return nil
}
