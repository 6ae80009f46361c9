package calc

// TypeChart maps a keratometry code to a power code to a design code.
type TypeChart map[string]map[string]string

// Ref1Rec carries the per-design constants behind a design code.
type Ref1Rec struct {
	Jessen float64
	OZ     float64
	FX     float64
}

// Ref1 maps a design code to its constants.
type Ref1 map[string]Ref1Rec

// Ref2Widths are the alignment-zone widths for one (diameter, optical
// zone) combination.
type Ref2Widths struct {
	AC1W float64
	AC2W float64
	AC3W float64
}

// Ref2 is keyed by normalized diameter, then normalized optical zone.
type Ref2 map[string]map[string]Ref2Widths

// eStep is one row of an eccentricity step table: the first entry whose
// upper bound covers the eccentricity wins.
type eStep struct {
	Upper float64
	Add   float64
}

// Default ortho-k design tables.
var defaultTypeChart = TypeChart{
	"41": {"1": "B18", "2": "B18", "3": "C18"},
	"42": {"1": "B18", "2": "C18", "3": "C18"},
	"43": {"1": "C18", "2": "C18", "3": "F12"},
	"44": {"1": "F12", "2": "F12", "3": "F14"},
	"45": {"1": "F14", "2": "F14", "3": "F18"},
	"46": {"1": "F14", "2": "F18", "3": "F18"},
}

var defaultRef1 = Ref1{
	"B18": {Jessen: 8.6, OZ: 6.0, FX: 0.75},
	"C18": {Jessen: 8.9, OZ: 6.2, FX: 0.75},
	"F12": {Jessen: 9.2, OZ: 6.2, FX: 0.8},
	"F14": {Jessen: 9.4, OZ: 6.4, FX: 0.8},
	"F18": {Jessen: 9.8, OZ: 6.6, FX: 0.85},
}

var defaultRef2 = Ref2{
	"10.2": {
		"6":   {AC1W: 0.8, AC2W: 0.4, AC3W: 0.3},
		"6.2": {AC1W: 0.8, AC2W: 0.4, AC3W: 0.3},
	},
	"10.6": {
		"6":   {AC1W: 0.9, AC2W: 0.4, AC3W: 0.3},
		"6.2": {AC1W: 0.9, AC2W: 0.45, AC3W: 0.3},
		"6.4": {AC1W: 0.9, AC2W: 0.45, AC3W: 0.35},
	},
	"11.2": {
		"6.2": {AC1W: 1.0, AC2W: 0.5, AC3W: 0.3},
		"6.4": {AC1W: 1.0, AC2W: 0.5, AC3W: 0.35},
		"6.6": {AC1W: 1.0, AC2W: 0.55, AC3W: 0.35},
	},
}

// AC2 offsets on top of AC1 by eccentricity, 0.30–1.55.
var defaultAC2Steps = []eStep{
	{0.3, 0.12}, {0.35, 0.13}, {0.4, 0.16}, {0.425, 0.17}, {0.45, 0.18},
	{0.5, 0.22}, {0.55, 0.23}, {0.6, 0.29}, {0.65, 0.3}, {0.7, 0.36},
	{0.75, 0.38}, {0.8, 0.46}, {0.85, 0.48}, {0.9, 0.5}, {0.95, 0.52},
	{1.0, 0.54}, {1.05, 0.56}, {1.1, 0.58}, {1.15, 0.6}, {1.2, 0.62},
	{1.25, 0.64}, {1.3, 0.66}, {1.35, 0.68}, {1.4, 0.7}, {1.45, 0.72},
	{1.5, 0.74}, {1.55, 0.76},
}

// AC3 offsets on top of AC1 by eccentricity, 0.30–0.85.
var defaultAC3Steps = []eStep{
	{0.3, 1.59}, {0.35, 1.64}, {0.4, 1.66}, {0.425, 1.67}, {0.45, 1.68},
	{0.5, 1.69}, {0.55, 1.72}, {0.6, 1.75}, {0.65, 1.75}, {0.7, 1.79},
	{0.75, 1.8}, {0.8, 1.85}, {0.85, 1.9},
}

// ref2Lookup resolves the width record for a (diameter, optical zone)
// pair, or false when the table has no entry.
func ref2Lookup(table Ref2, diam, oz any) (Ref2Widths, bool) {
	if table == nil {
		return Ref2Widths{}, false
	}
	byOZ, found := table[toKey(diam)]
	if !found {
		return Ref2Widths{}, false
	}
	w, found := byOZ[toKey(oz)]
	return w, found
}

// stepLookup returns the offset for an eccentricity, or false when the
// value falls outside the table's domain.
func stepLookup(steps []eStep, e float64) (float64, bool) {
	for _, s := range steps {
		if e <= s.Upper {
			return s.Add, true
		}
	}
	return 0, false
}
