package schema

import "github.com/angelglnd-coder/cler-vision-app/internal/model"

// type2 is the production order format ("GOB ORDERS"). Rows arrive with the
// geometry already decided, so calculation is skipped and only work order
// numbering applies.
func newType2() *model.Schema {
	columns := []string{
		"ORDER_#", "SERIAL_#", "BRAND", "PCS", "MATERIAL", "COLOR",
		"LENS_TYPE", "EYES", "KM-CODE", "POWER-CODE", "Base curve (dry)",
		"C.T. (dry)", "Lens Power", "shopping #", "DEVICE", "MFG",
		"Mat_Code", "Mat_Lot", "GTIN", "Sold_To", "Bill_To", "Ship_To",
		"PO date",
	}
	return &model.Schema{
		ID:                  "type2",
		Name:                "GOB ORDERS",
		Version:             "1.0",
		RequiredSignatures:  []string{"ORDER_#", "SERIAL_#", "LENS_TYPE"},
		PreferredSignatures: []string{"EYES", "KM-CODE", "POWER-CODE", "Sold_To"},
		Columns:             columns,
		RequiredColumns:     columns,
		OptionalColumns:     nil,
		FieldMappings: map[string]string{
			"ORDER_#":          "order_number",
			"SERIAL_#":         "serial_number",
			"BRAND":            "brand",
			"PCS":              "pcs",
			"MATERIAL":         "material",
			"COLOR":            "color",
			"LENS_TYPE":        "Type",
			"EYES":             "od_os",
			"KM-CODE":          "km_code",
			"POWER-CODE":       "power_code",
			"Base curve (dry)": "base_curve_dry",
			"C.T. (dry)":       "ct_dry",
			"Lens Power":       "lens_power",
			"shopping #":       "shopping_number",
			"DEVICE":           "Device",
			"MFG":              "Mfg",
			"Mat_Code":         "Mat_Code",
			"Mat_Lot":          "Mat_Lot",
			"GTIN":             "GTIN",
			"Sold_To":          "Sold_To",
			"Bill_To":          "Bill_To",
			"Ship_To":          "Ship_To",
			"PO date":          "PO_date",
		},
		NumericFields: numericSet("pcs", "base_curve_dry", "ct_dry", "lens_power"),
		DateFields:    []string{"PO date"},
		Processing: model.ProcessingFlags{
			NeedsCalculation:  false,
			NeedsWOGeneration: true,
		},
	}
}
