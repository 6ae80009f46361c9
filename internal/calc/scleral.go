package calc

import (
	"math"
	"strings"

	"github.com/angelglnd-coder/cler-vision-app/internal/model"
)

// Scleral is the multi-zone family: zone radii come from explicit design
// constants instead of lookup tables.
const (
	ScleralID   = "scleral"
	ScleralName = "Scleral"
)

var scleralAliases = []string{"scleral", "scl"}

// pcBase is the peripheral curve base radius every design offsets from.
const pcBase = 13.0

// designConstants holds the per-design zone increments: z1 from BC to RC1,
// z2 from RC1 to AC1, z3 from AC1 to AC2, pcOffset from pcBase to PC1.
type designConstants struct {
	Name     string
	Z1       float64
	Z2       float64
	Z3       float64
	PCOffset float64
}

var scleralDesigns = map[int]designConstants{
	1: {Name: "RHC", Z1: 1.5, Z2: 1.25, Z3: 1.0, PCOffset: 1.0},
	2: {Name: "RHCA", Z1: 1.5, Z2: 1.25, Z3: 0.75, PCOffset: 1.67},
	3: {Name: "RHCB", Z1: 1.25, Z2: 1.0, Z3: 0.25, PCOffset: 2.0},
	4: {Name: "CLER", Z1: 1.0, Z2: 0.8, Z3: 0.4, PCOffset: 1.0},
}

// Zone width weights measured from the design sheet.
const (
	edgeOffset = 0.5
	w1Factor   = 0.46667
	w2Factor   = 0.33333
	w3Factor   = 0.2
)

// defaultBaseCT is the uncorrected center thickness.
const defaultBaseCT = 0.36

// powerCTSteps maps sphere power to a center-thickness addition. First
// covering threshold wins; powers above the table take the maximum.
var powerCTSteps = []eStep{
	{-0.01, 0}, {0.25, 0.01}, {0.5, 0.02}, {1, 0.03}, {1.25, 0.04},
	{1.5, 0.05}, {1.75, 0.06}, {2, 0.07}, {2.5, 0.08}, {2.75, 0.09},
	{3, 0.1}, {3.25, 0.11}, {3.5, 0.12}, {3.75, 0.13}, {4, 0.14},
	{4.25, 0.15}, {4.5, 0.16}, {5, 0.17}, {5.25, 0.18}, {5.5, 0.19},
	{5.75, 0.2}, {6, 0.21}, {6.25, 0.22}, {6.5, 0.23}, {6.75, 0.24},
	{7, 0.25}, {7.25, 0.26}, {7.5, 0.27}, {8, 0.28}, {8.25, 0.29},
	{8.5, 0.3}, {8.75, 0.31}, {9, 0.32}, {9.25, 0.33}, {9.5, 0.34},
	{9.75, 0.35}, {10, 0.36}, {10.25, 0.37}, {10.5, 0.38}, {10.75, 0.39},
	{11, 0.4}, {11.25, 0.41}, {11.5, 0.42}, {12, 0.43}, {12.25, 0.44},
	{12.5, 0.45}, {12.75, 0.46}, {13, 0.47}, {13.25, 0.48}, {13.5, 0.49},
	{13.75, 0.5}, {14, 0.51}, {14.25, 0.52}, {14.5, 0.53}, {14.75, 0.54},
	{15, 0.55}, {15.25, 0.56}, {15.5, 0.57}, {15.75, 0.58}, {16, 0.59},
	{16.25, 0.6}, {16.5, 0.61}, {16.75, 0.62}, {17, 0.63}, {17.25, 0.65},
	{17.5, 0.66}, {17.75, 0.67}, {18, 0.68}, {18.25, 0.69}, {18.5, 0.7},
	{18.75, 0.71}, {19, 0.72}, {19.25, 0.73}, {19.5, 0.74}, {19.75, 0.75},
	{20, 0.76},
}

const maxPowerCTOffset = 0.76

type scleralCalculator struct {
	baseCT float64
}

// NewScleral builds the scleral calculator.
func NewScleral() Calculator {
	return &scleralCalculator{baseCT: defaultBaseCT}
}

func (c *scleralCalculator) ID() string   { return ScleralID }
func (c *scleralCalculator) Name() string { return ScleralName }

// sagitta = (r - sqrt(r^2 - (d/2)^2)) / 0.01; invalid when the chord is
// wider than the curve allows.
func sagitta(radius, diam float64) (float64, bool) {
	half := diam / 2
	if radius*radius < half*half {
		return 0, false
	}
	return (radius - math.Sqrt(radius*radius-half*half)) / 0.01, true
}

// toricRadius = 337.5 / (337.5/r + toricity); zero toricity passes through.
func toricRadius(radius, toricity float64) (float64, bool) {
	if toricity == 0 {
		return radius, true
	}
	denom := 337.5/radius + toricity
	if math.Abs(denom) < epsilon {
		return 0, false
	}
	return 337.5 / denom, true
}

// resolveDesign accepts the numeric design selector or a design name.
func resolveDesign(v any) (designConstants, bool) {
	if n, isNum := toNum(v); isNum {
		d, found := scleralDesigns[int(n)]
		return d, found
	}
	name := strings.ToUpper(strings.TrimSpace(toStr(v)))
	for _, d := range scleralDesigns {
		if d.Name == name {
			return d, true
		}
	}
	return designConstants{}, false
}

// ComputeRow derives the zone geometry for one scleral row.
func (c *scleralCalculator) ComputeRow(row model.Row) model.Fields {
	bc, haveBC := toNum(firstPresent(row, "BC", "baseCurve"))
	diam, haveDiam := toNum(firstPresent(row, "Diam", "DIAM"))
	oz, haveOZ := toNum(firstPresent(row, "OZ"))
	design, haveDesign := resolveDesign(firstPresent(row, "Design", "designType"))

	if !haveBC || !haveDiam || !haveOZ || !haveDesign {
		return failAll("missing required inputs (B.C., DIAM, OZ, DESIGN)")
	}

	sphere, _ := toNum(firstPresent(row, "Sphere"))
	toricity, _ := toNum(firstPresent(row, "Cyl"))

	// Zone widths: cumulative diameters W1..W4 from the OZ outward.
	u4 := (diam-oz)/2 - edgeOffset
	w1 := oz + 2*(w1Factor*u4)
	w2 := w1 + 2*(w2Factor*u4)
	w3 := w2 + 2*(w3Factor*u4)
	w4 := w3 + 2*edgeOffset

	// Zone radii from the design constants.
	rc1 := bc + design.Z1
	ac1 := rc1 + design.Z2
	ac2 := ac1 + design.Z3
	pc1 := pcBase + design.PCOffset

	toric := func(r float64) model.FieldResult {
		t, valid := toricRadius(r, toricity)
		if !valid {
			return fail("division by zero")
		}
		return ok(t)
	}

	out := model.Fields{
		"BC1_BC2":    ok(bc),
		"PW1_PW2":    ok(sphere),
		"OZ1_OZ2":    ok(oz),
		"RC1_radius": ok(rc1),
		"RC1_tor":    toric(rc1),
		"AC1_radius": ok(ac1),
		"AC1_tor":    toric(ac1),
		"AC2_radius": ok(ac2),
		"AC2_tor":    toric(ac2),
		"AC3_radius": fail("no AC3 zone in scleral design"),
		"AC3_tor":    fail("no AC3 zone in scleral design"),
		"AC3_width":  fail("no AC3 zone in scleral design"),
		"RC1_width":  ok(w1),
		"AC1_width":  ok(w2),
		"AC2_width":  ok(w3),
		"PC_width":   ok(w4),
		"PC1_radius": ok(pc1),
		"PC_radius":  ok(pc1),
		"LensPower":  ok(sphere),
	}
	out["PC2_radius"] = toric(pc1)

	// Sagitta balance between the spherical and toric trains, and the
	// resulting sag differences.
	out["SAG_DIFF_sph"] = c.sagDifference(bc, []float64{rc1, ac1, ac2, pc1}, oz, []float64{w1, w2, w3, w4}, nil)
	out["SAG_DIFF_tor"] = c.sagDifference(bc, []float64{rc1, ac1, ac2, pc1}, oz, []float64{w1, w2, w3, w4}, &toricity)

	out["CT"] = c.centerThickness(sphere)

	if axis, haveAxis := toNum(firstPresent(row, "Axis")); haveAxis {
		out["Axis_out"] = ok(axis)
	}

	return ValidateOutputShape(out, ScleralID)
}

// ComputeAll runs ComputeRow over a batch in row order.
func (c *scleralCalculator) ComputeAll(rows []model.Row) []model.Fields {
	out := make([]model.Fields, len(rows))
	for i, r := range rows {
		out[i] = c.ComputeRow(r)
	}
	return out
}

// sagDifference = (sum of aligned sagittas - sum of shifted sagittas)/100
// - 0.07. Passing a toricity computes the toric train.
func (c *scleralCalculator) sagDifference(bc float64, radii []float64, oz float64, widths []float64, toricity *float64) model.FieldResult {
	rs := make([]float64, len(radii))
	copy(rs, radii)
	if toricity != nil {
		for i, r := range rs {
			t, valid := toricRadius(r, *toricity)
			if !valid {
				return fail("division by zero")
			}
			rs[i] = t
		}
	}

	sum := func(pairs [][2]float64) float64 {
		total := 0.0
		for _, p := range pairs {
			if s, valid := sagitta(p[0], p[1]); valid {
				total += s
			}
		}
		return total
	}

	aligned := sum([][2]float64{
		{bc, oz}, {rs[0], widths[0]}, {rs[1], widths[1]}, {rs[2], widths[2]}, {rs[3], widths[3]},
	})
	shifted := sum([][2]float64{
		{rs[0], oz}, {rs[1], widths[0]}, {rs[2], widths[1]}, {rs[3], widths[2]},
	})

	return ok((aligned-shifted)/100 - 0.07)
}

// centerThickness adds the power-dependent offset to the base thickness.
func (c *scleralCalculator) centerThickness(sphere float64) model.FieldResult {
	add, inRange := stepLookup(powerCTSteps, sphere)
	if !inRange {
		add = maxPowerCTOffset
	}
	return ok(c.baseCT + add)
}
