package schema

import "github.com/angelglnd-coder/cler-vision-app/internal/model"

// type3 is the scleral order format ("SCLERAL ORDERS").
func newType3() *model.Schema {
	columns := []string{
		"Patient Name", "Sold To", "Customer PO#", "No.", "PO Date",
		"Eye", "B.C.", "Sphere", "Cyl", "Axis", "DIAM", "OZ",
		"SAG HEIGHT", "ADD", "CN/CD", "F.O.Z.", "DESIGN", "Device",
	}
	required := []string{
		"Patient Name", "Sold To", "Customer PO#", "No.",
		"Eye", "B.C.", "Sphere", "DIAM", "OZ", "DESIGN", "Device",
	}
	optional := []string{
		"Cyl", "Axis", "SAG HEIGHT", "ADD", "CN/CD", "F.O.Z.", "PO Date",
	}
	return &model.Schema{
		ID:                  "type3",
		Name:                "SCLERAL ORDERS",
		Version:             "1.0",
		RequiredSignatures:  []string{"DESIGN", "SAG HEIGHT"},
		PreferredSignatures: []string{"B.C.", "Sphere", "OZ"},
		Columns:             columns,
		RequiredColumns:     required,
		OptionalColumns:     optional,
		FieldMappings: map[string]string{
			"Patient Name": "Patient_Name",
			"Sold To":      "Sold_To",
			"Customer PO#": "PO",
			"No.":          "number",
			"PO Date":      "PO_date",
			"Eye":          "od_os",
			"B.C.":         "BC",
			"Sphere":       "Sphere",
			"Cyl":          "Cyl",
			"Axis":         "Axis",
			"DIAM":         "Diam",
			"OZ":           "OZ",
			"SAG HEIGHT":   "SAG_HEIGHT",
			"ADD":          "ADD",
			"CN/CD":        "cn_cd",
			"F.O.Z.":       "FOZ",
			"DESIGN":       "Design",
			"Device":       "Device",
		},
		NumericFields: numericSet(
			"BC", "Sphere", "Cyl", "Axis", "Diam", "OZ", "SAG_HEIGHT",
			"ADD", "FOZ",
		),
		DateFields: []string{"PO Date"},
		Processing: model.ProcessingFlags{
			NeedsCalculation:  true,
			NeedsWOGeneration: true,
			Calculator:        "scleral",
		},
	}
}
