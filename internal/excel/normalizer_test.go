package excel_test

import (
	"testing"

	"github.com/angelglnd-coder/cler-vision-app/internal/excel"
	"github.com/angelglnd-coder/cler-vision-app/internal/schema"
)

func TestBuildRawRowsStopsAtEmptyRow(t *testing.T) {
	matrix := [][]string{
		{"Patient Name", "Diam"},
		{"DOE JOHN", "10.6"},
		{"ROE JANE", "11.2"},
		{"", ""},
		{"GHOST ROW", "0"},
	}
	headers, rows := excel.BuildRawRows(matrix, 0)

	if len(headers) != 2 {
		t.Fatalf("got %d headers, want 2", len(headers))
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[1]["Patient Name"] != "ROE JANE" {
		t.Fatalf("row 1 = %v", rows[1])
	}
}

func TestBuildRawRowsPadsShortLines(t *testing.T) {
	matrix := [][]string{
		{"Patient Name", "Diam", "Qty"},
		{"DOE JOHN"},
	}
	_, rows := excel.BuildRawRows(matrix, 0)

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if v, found := rows[0]["Qty"]; !found || v != "" {
		t.Fatalf("short line not padded: %v", rows[0])
	}
}

func TestNormalizeRowsMapsFieldsAndDates(t *testing.T) {
	sc := schema.NewRegistry().ByID("type1")
	raws := []map[string]string{
		{
			"Patient Name": " DOE JOHN ",
			"No.":          "1",
			"K-Code":       "44",
			"PO Date":      "45901",
			"Cyl/TORIC":    "",
		},
	}
	rows := excel.NormalizeRows(raws, sc)

	row := rows[0]
	if got := row.String("Patient_Name"); got != "DOE JOHN" {
		t.Fatalf("Patient_Name = %q", got)
	}
	if got := row.String("number"); got != "1" {
		t.Fatalf("number = %q", got)
	}
	if got := row.String("K_Code"); got != "44" {
		t.Fatalf("K_Code = %q", got)
	}
	// Serial 45901 is 2025-09-01 in the 1900 date system.
	if got := row.String("PO_date"); got != "2025-09-01" {
		t.Fatalf("PO_date = %q", got)
	}
	if v, found := row["Cyl"]; !found || v != nil {
		t.Fatalf("empty Cyl = %v, want nil", v)
	}
}

func TestNormalizeRowsCoercesNumericFields(t *testing.T) {
	sc := schema.NewRegistry().ByID("type3")
	raws := []map[string]string{
		{"B.C.": "7.5", "DIAM": "15", "SAG HEIGHT": "4200", "OZ": "n/a"},
	}
	rows := excel.NormalizeRows(raws, sc)

	row := rows[0]
	if v, isNum := row["BC"].(float64); !isNum || v != 7.5 {
		t.Fatalf("BC = %v (%T), want 7.5", row["BC"], row["BC"])
	}
	if v, isNum := row["SAG_HEIGHT"].(float64); !isNum || v != 4200 {
		t.Fatalf("SAG_HEIGHT = %v, want 4200", row["SAG_HEIGHT"])
	}
	if got := row.String("OZ"); got != "n/a" {
		t.Fatalf("unparseable OZ = %q, want pass-through", got)
	}
}

func TestNormalizeRowsTextualDates(t *testing.T) {
	sc := schema.NewRegistry().ByID("type1")
	cases := []struct {
		in, want string
	}{
		{"2026-09-01", "2026-09-01"},
		{"09/01/2026", "2026-09-01"},
		{"9/1/2026", "2026-09-01"},
		{"not a date", "not a date"},
	}
	for _, tc := range cases {
		rows := excel.NormalizeRows([]map[string]string{{"PO Date": tc.in}}, sc)
		if got := rows[0].String("PO_date"); got != tc.want {
			t.Fatalf("PO_date for %q = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidateHeadersReportsDrift(t *testing.T) {
	sc := schema.NewRegistry().ByID("type1")
	headers := []string{"Patient Name", "Diam", "cldfile", "Mystery Column"}

	missing, extra, msgs := excel.ValidateHeaders(headers, sc)

	if len(missing) == 0 {
		t.Fatal("expected missing required columns")
	}
	if len(extra) != 1 || extra[0] != "Mystery Column" {
		t.Fatalf("extra = %v", extra)
	}
	if len(msgs) != 2 {
		t.Fatalf("msgs = %v", msgs)
	}
}
