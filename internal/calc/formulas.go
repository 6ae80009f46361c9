package calc

import (
	"math"

	"github.com/angelglnd-coder/cler-vision-app/internal/model"
)

// Core curvature chain shared by the lookup-driven families. All radii are
// diopter conversions around the 337.5 constant.

// computeBC1BC2 = 337.5 / (K - JESSEN + P)
func computeBC1BC2(k, p, jessen float64, haveInputs bool) model.FieldResult {
	if !haveInputs {
		return fail("missing input")
	}
	denom := k - jessen + p
	if math.Abs(denom) < epsilon {
		return fail("division by zero")
	}
	return ok(337.5 / denom)
}

// computeRC1Radius = 337.5 / (K - P*FX + JESSEN - toricity offset)
func computeRC1Radius(k, p, fx, jessen, torOffset float64, haveInputs bool) model.FieldResult {
	if !haveInputs {
		return fail("missing input")
	}
	denom := k - p*fx + jessen - torOffset
	if math.Abs(denom) < epsilon {
		return fail("division by zero")
	}
	return ok(337.5 / denom)
}

// computeRC1Tor = 337.5 / (337.5/RC1_radius + toricity value). The
// unrounded RC1 radius feeds the chain so rounding cannot compound.
func computeRC1Tor(rc1 model.FieldResult, tor Toricity) model.FieldResult {
	if !rc1.Valid {
		return fail(rc1.Err)
	}
	if !tor.HasValue {
		return fail("missing TORICITY_value")
	}
	if tor.Value < 0 {
		return fail("TORICITY_value must be non-negative")
	}
	denom := 337.5/rc1.Raw + tor.Value
	if math.Abs(denom) < epsilon {
		return fail("division by zero")
	}
	return ok(337.5 / denom)
}

// computeAC1Radius = 337.5 / (K + 0.12 + toricity offset)
func computeAC1Radius(k, torOffset float64, haveK bool) model.FieldResult {
	if !haveK {
		return fail("missing K")
	}
	denom := k + 0.12 + torOffset
	if math.Abs(denom) < epsilon {
		return fail("division by zero")
	}
	return ok(337.5 / denom)
}

// computeAC1Tor = 337.5 / (K + 0.12 + toricity value + toricity offset)
func computeAC1Tor(k float64, haveK bool, tor Toricity) model.FieldResult {
	if !haveK {
		return fail("missing K")
	}
	if !tor.HasValue {
		return fail("missing TORICITY_value")
	}
	denom := k + 0.12 + tor.Value + tor.Offset
	if math.Abs(denom) < epsilon {
		return fail("division by zero")
	}
	return ok(337.5 / denom)
}

// computeZoneOffset applies an eccentricity step table on top of the AC1
// pair. A dependency error or an eccentricity outside the table's domain
// propagates into both outputs.
func computeZoneOffset(ac1Radius, ac1Tor model.FieldResult, e float64, steps []eStep, zone string) (radius, tor model.FieldResult) {
	if !ac1Radius.Valid {
		return fail(ac1Radius.Err), fail(ac1Radius.Err)
	}
	add, inRange := stepLookup(steps, e)
	if !inRange {
		reason := "eValue out of range for " + zone
		return fail(reason), fail(reason)
	}
	radius = ok(ac1Radius.Value + add)
	if !ac1Tor.Valid {
		return radius, fail(ac1Tor.Err)
	}
	return radius, ok(ac1Tor.Value + add)
}

// computeWidths resolves the zone widths. RC1 and PC widths are fixed by
// the design; the alignment widths come from the (diameter, OZ) table and
// fail individually when the table has no entry.
func computeWidths(widths Ref2Widths, found bool, rc1Width, pcWidth float64) model.Fields {
	out := model.Fields{
		"RC1_width": ok(rc1Width),
		"PC_width":  ok(pcWidth),
	}
	if !found {
		out["AC1_width"] = fail("AC1 W not found in REF2")
		out["AC2_width"] = fail("AC2 W not found in REF2")
		out["AC3_width"] = fail("AC3 W not found in REF2")
		return out
	}
	out["AC1_width"] = ok(widths.AC1W)
	out["AC2_width"] = ok(widths.AC2W)
	out["AC3_width"] = ok(widths.AC3W)
	return out
}
