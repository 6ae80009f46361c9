package calc

// Ortho-k is the default family: lookup-table driven, covering rows whose
// device value is absent or unrecognized.
const (
	OrthoKID   = "orthoK"
	OrthoKName = "Ortho K"
)

var orthoKAliases = []string{"ortho k", "orthok", "ortho-k"}

// NewOrthoK builds the ortho-k calculator, optionally overriding tables.
func NewOrthoK(overrides LookupOverrides) Calculator {
	c := &lookupCalculator{
		id:        OrthoKID,
		name:      OrthoKName,
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
