package schema

import "github.com/angelglnd-coder/cler-vision-app/internal/model"

// type1 is the current work order format ("HAI ORDERS").
func newType1() *model.Schema {
	columns := []string{
		"Patient Name", "Customer PO#", "PO Date", "No.", "OD/OS",
		"K-Code", "Sphr Pwr/P-Code", "Price Code", "SPEC", "Cyl/TORIC",
		"Diam", "Color", "Qty", "Laser Mark", "Design", "Viet Label",
		"Brand", "Addr To", "Previous S.O#", "Note", "Device", "Mfg",
		"Mat_Code", "Mat_Lot", "GTIN", "Sold To", "Bill To", "cldfile",
		"Device Type", "Edge Thick", "Center Thick", "eValue",
		"Container Code",
	}
	required := []string{
		"Patient Name", "Customer PO#", "No.", "OD/OS", "K-Code",
		"Sphr Pwr/P-Code", "Cyl/TORIC", "Diam", "Qty", "Device",
		"Sold To", "cldfile", "Device Type", "eValue", "Container Code",
	}
	optional := []string{
		"PO Date", "Price Code", "SPEC", "Color", "Laser Mark", "Design",
		"Viet Label", "Brand", "Addr To", "Previous S.O#", "Note", "Mfg",
		"Mat_Code", "Mat_Lot", "GTIN", "Bill To", "Edge Thick",
		"Center Thick",
	}
	return &model.Schema{
		ID:                  "type1",
		Name:                "HAI ORDERS",
		Version:             "1.0",
		RequiredSignatures:  []string{"cldfile", "Container Code"},
		PreferredSignatures: []string{"Patient Name", "Device Type", "Sphr Pwr/P-Code"},
		Columns:             columns,
		RequiredColumns:     required,
		OptionalColumns:     optional,
		FieldMappings: map[string]string{
			"Patient Name":    "Patient_Name",
			"Customer PO#":    "PO",
			"PO Date":         "PO_date",
			"No.":             "number",
			"OD/OS":           "od_os",
			"K-Code":          "K_Code",
			"Sphr Pwr/P-Code": "P_Code",
			"Price Code":      "Price_Code",
			"SPEC":            "SPEC",
			"Cyl/TORIC":       "Cyl",
			"Diam":            "Diam",
			"Color":           "Color",
			"Qty":             "Qty",
			"Laser Mark":      "Laser",
			"Design":          "Design",
			"Viet Label":      "Viet_Label",
			"Brand":           "Labeling",
			"Addr To":         "Ship_Code",
			"Previous S.O#":   "Previous_SO",
			"Note":            "Note",
			"Device":          "Device",
			"Mfg":             "Mfg",
			"Mat_Code":        "Mat_Code",
			"Mat_Lot":         "Mat_Lot",
			"GTIN":            "GTIN",
			"Sold To":         "Sold_To",
			"Bill To":         "Bill_To",
			"cldfile":         "cldfile",
			"Device Type":     "Type",
			"Edge Thick":      "Edge_Thick",
			"Center Thick":    "Center_Thick",
			"eValue":          "eValue",
			"Container Code":  "Container_Code",
		},
		NumericFields: numericSet(
			"PW1_PW2", "DIAM", "OZ1_OZ2", "SAG_HEIGHT", "CT_width",
			"RC1_value", "RC1_width", "RC1_cyl",
			"AC1_value", "AC1_width", "AC1_cyl",
			"AC2_value", "AC2_width", "AC2_cyl",
			"AC3_value", "AC3_width", "AC3_cyl",
			"PC1_value", "PC1_width", "Queue_Thickness", "mtnum", "ctnum",
		),
		DateFields: []string{"PO Date"},
		Processing: model.ProcessingFlags{
			NeedsCalculation:  true,
			NeedsWOGeneration: true,
		},
	}
}
