package calc

// EXPO1AC runs the direct formula chain with its own table set. The tables
// currently match the ortho-k revision; they are registered independently
// so a table change for one family never leaks into the other.
const (
	Expo1ACID   = "expo1ac"
	Expo1ACName = "EXPO1AC"
)

var expo1acAliases = []string{"expo1ac"}

// NewExpo1AC builds the EXPO1AC calculator, optionally overriding tables.
func NewExpo1AC(overrides LookupOverrides) Calculator {
	c := &lookupCalculator{
		id:        Expo1ACID,
		name:      Expo1ACName,
		typeChart: defaultTypeChart,
		ref1:      defaultRef1,
		ref2:      defaultRef2,
		ac2Steps:  defaultAC2Steps,
		ac3Steps:  defaultAC3Steps,
		eMin:      0.30,
		eMax:      1.55,
		pcRadius:  12,
		lensPower: 1,
		rc1Width:  0.6,
		pcWidth:   0.2,
	}
	c.applyOverrides(overrides)
	return c
}
