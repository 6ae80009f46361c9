package importer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/angelglnd-coder/cler-vision-app/internal/calc"
	"github.com/angelglnd-coder/cler-vision-app/internal/importer"
	"github.com/angelglnd-coder/cler-vision-app/internal/schema"
	"github.com/angelglnd-coder/cler-vision-app/internal/workorder"
)

type fakeAuthority struct {
	next map[string]int
}

func (f *fakeAuthority) NextNumber(account string) (workorder.AuthorityResponse, error) {
	return workorder.AuthorityResponse{Prefix: account, NextNumber: f.next[account]}, nil
}

func buildWorkbook(t *testing.T, sheet string, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatalf("SetSheetName: %v", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return buf
}

func orderWorkbook(t *testing.T) *bytes.Buffer {
	headers := []any{
		"Patient Name", "No.", "OD/OS", "K-Code", "Sphr Pwr/P-Code",
		"Cyl/TORIC", "Diam", "Device", "Device Type", "Sold To",
		"cldfile", "eValue", "Container Code",
	}
	return buildWorkbook(t, "Orders", [][]any{
		headers,
		{"DOE JOHN", "1", "OD", "44", "2", "1.25", "10.6", "Ortho K", "F12", "003", "LS19", "0.5", "C1"},
		{"DOE JOHN", "2", "OS", "44", "2", "1.25", "10.6", "Ortho K", "F12", "003", "LS19", "0.5", "C2"},
	})
}

func newCoordinator(auth workorder.Authority) *importer.Coordinator {
	return importer.NewCoordinator(schema.NewRegistry(), calc.NewRegistry(), auth)
}

func TestImportDetectsAndCalculates(t *testing.T) {
	c := newCoordinator(&fakeAuthority{})
	result, err := c.Import(orderWorkbook(t), importer.ImportOptions{Filename: "orders.xlsx"})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if result.SchemaName != "HAI ORDERS" {
		t.Fatalf("schema = %q, want HAI ORDERS", result.SchemaName)
	}
	if result.RunID == "" {
		t.Fatal("empty run id")
	}
	if len(result.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(result.Rows))
	}

	row := result.Rows[0]
	if got := row.String("Patient_Name"); got != "DOE JOHN" {
		t.Fatalf("Patient_Name = %q", got)
	}
	bc, isNum := row["BC1_BC2"].(float64)
	if !isNum || bc != 9.17 {
		t.Fatalf("BC1_BC2 = %v, want 9.17", row["BC1_BC2"])
	}
}

func TestImportSelectsCalculatorByDeviceColumn(t *testing.T) {
	headers := []any{
		"Patient Name", "No.", "OD/OS", "K-Code", "Sphr Pwr/P-Code",
		"Cyl/TORIC", "Diam", "Device", "Device Type", "Sold To",
		"cldfile", "eValue", "Container Code",
	}
	wb := buildWorkbook(t, "Orders", [][]any{
		headers,
		{"DOE JOHN", "1", "OD", "44", "2", "1.25", "10.6", "scleral", "F12", "003", "LS19", "0.5", "C1"},
	})

	c := newCoordinator(&fakeAuthority{})
	result, err := c.Import(wb, importer.ImportOptions{})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	row := result.Rows[0]
	if _, computed := row["BC1_BC2"].(float64); computed {
		t.Fatalf("scleral device row computed by the lookup family: BC1_BC2 = %v", row["BC1_BC2"])
	}
	found := false
	for _, d := range result.Diagnostics {
		if strings.Contains(d, "scleral") {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("diagnostics = %v, want scleral failure", result.Diagnostics)
	}
}

func TestImportKeepsFieldErrorsOnRow(t *testing.T) {
	headers := []any{
		"Patient Name", "No.", "OD/OS", "K-Code", "Sphr Pwr/P-Code",
		"Cyl/TORIC", "Diam", "Device", "Device Type", "Sold To",
		"cldfile", "eValue", "Container Code",
	}
	wb := buildWorkbook(t, "Orders", [][]any{
		headers,
		{"DOE JOHN", "1", "OD", "44", "2", "1.25", "10.6", "Ortho K", "F12", "003", "LS19", "1.2", "C1"},
	})

	c := newCoordinator(&fakeAuthority{})
	result, err := c.Import(wb, importer.ImportOptions{})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	row := result.Rows[0]
	if bc, isNum := row["BC1_BC2"].(float64); !isNum || bc != 9.17 {
		t.Fatalf("BC1_BC2 = %v, want 9.17", row["BC1_BC2"])
	}
	reason, found := row["AC3_radius_err"].(string)
	if !found || reason == "" {
		t.Fatalf("AC3_radius_err missing from row: %v", row["AC3_radius_err"])
	}
}

func TestImportRejectsUnknownLayout(t *testing.T) {
	wb := buildWorkbook(t, "Sheet1", [][]any{
		{"colA", "colB"},
		{"1", "2"},
	})
	c := newCoordinator(&fakeAuthority{})
	if _, err := c.Import(wb, importer.ImportOptions{}); err == nil {
		t.Fatal("Import of unknown layout succeeded, want error")
	}
}

func TestPipelineEndToEnd(t *testing.T) {
	c := newCoordinator(&fakeAuthority{next: map[string]int{"003": 4}})
	result, err := c.Import(orderWorkbook(t), importer.ImportOptions{Filename: "orders.xlsx"})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if err := c.GenerateNumbers(result); err != nil {
		t.Fatalf("GenerateNumbers: %v", err)
	}
	if got := result.Rows[0].String("WO_Number"); got != "003-000004 01" {
		t.Fatalf("row 0 WO_Number = %q", got)
	}
	if got := result.Rows[1].String("WO_Number"); got != "003-000005 01" {
		t.Fatalf("row 1 WO_Number = %q", got)
	}

	pair, err := c.Emit(result, importer.EmitOptions{QueueName: "orders.QUE", Thickness: 12.5, HasThickness: true})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if len(pair.CutFiles) != 2 {
		t.Fatalf("got %d cut files, want 2", len(pair.CutFiles))
	}
	if pair.CutFiles[0].Name != "003-000004-01.DIF" {
		t.Fatalf("cut file 0 = %q", pair.CutFiles[0].Name)
	}
	if pair.CutFiles[1].Name != "003-000005-02.DIF" {
		t.Fatalf("cut file 1 = %q", pair.CutFiles[1].Name)
	}

	lines := strings.Split(strings.TrimSuffix(pair.Queue.Text, "\r\n"), "\r\n")
	if len(lines) != 3 {
		t.Fatalf("queue has %d lines, want 3", len(lines))
	}
	if lines[0] != "queue file" {
		t.Fatalf("queue header = %q", lines[0])
	}
	if lines[1] != "\"003-000004-01.DIF\" 003-000004-01.DIF 1 12.5" {
		t.Fatalf("queue line 1 = %q", lines[1])
	}

	if !strings.Contains(pair.CutFiles[0].Text, `cldfile = "LS19"`) {
		t.Fatal("cut file did not select LS19")
	}
	if !strings.Contains(pair.CutFiles[0].Text, "data(0) = 9.17\r\n") {
		t.Fatal("computed base curve missing from cut file")
	}
}

func TestImportScleralLayout(t *testing.T) {
	headers := []any{"DESIGN", "SAG HEIGHT", "B.C.", "Sphere", "OZ", "DIAM", "Eye"}
	wb := buildWorkbook(t, "Scleral", [][]any{
		headers,
		{"4", "4200", "7.5", "-4", "8", "15", "OD"},
	})
	c := newCoordinator(&fakeAuthority{})
	result, err := c.Import(wb, importer.ImportOptions{})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if result.SchemaName != "SCLERAL ORDERS" {
		t.Fatalf("schema = %q, want SCLERAL ORDERS", result.SchemaName)
	}
	rc1, isNum := result.Rows[0]["RC1_radius"].(float64)
	if !isNum || rc1 != 8.5 {
		t.Fatalf("RC1_radius = %v, want 8.5", result.Rows[0]["RC1_radius"])
	}
}

func TestEmitSeedsThicknessFromRows(t *testing.T) {
	c := newCoordinator(&fakeAuthority{next: map[string]int{"003": 1}})
	result, err := c.Import(orderWorkbook(t), importer.ImportOptions{})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if err := c.GenerateNumbers(result); err != nil {
		t.Fatalf("GenerateNumbers: %v", err)
	}
	result.Rows[0]["CT"] = 0.36

	pair, err := c.Emit(result, importer.EmitOptions{})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(pair.Queue.Text, " 1 0.36\r\n") {
		t.Fatalf("queue text:\n%q", pair.Queue.Text)
	}
}
