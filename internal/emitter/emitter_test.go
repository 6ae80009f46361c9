package emitter_test

import (
	"strings"
	"testing"

	"github.com/angelglnd-coder/cler-vision-app/internal/emitter"
	"github.com/angelglnd-coder/cler-vision-app/internal/model"
)

func TestMakeStem(t *testing.T) {
	cases := []struct {
		number, line, want string
	}{
		{"003-000004", "1", "003-000004-01"},
		{"003-000004", "12", "003-000004-12"},
		{"003-000004", "", "003-000004-01"},
		{"003 - 000004", "2", "003-000004-02"},
		{"003--000004", "2", "003-000004-02"},
	}
	for _, tc := range cases {
		if got := emitter.MakeStem(tc.number, tc.line); got != tc.want {
			t.Fatalf("MakeStem(%q, %q) = %q, want %q", tc.number, tc.line, got, tc.want)
		}
	}
}

func TestGenerateQueueIndex(t *testing.T) {
	groups := []model.Group{
		{
			Thickness:    12.5,
			HasThickness: true,
			Rows: []model.Row{
				{"WO_Number": "003-000004 01", "number": "1"},
				{"WO_Number": "003-000005 01", "number": "2"},
			},
		},
	}
	pair, err := emitter.Generate("run.QUE", groups)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(pair.Errors) != 0 {
		t.Fatalf("errors: %v", pair.Errors)
	}
	if pair.Queue.Name != "run.QUE" {
		t.Fatalf("queue name = %q", pair.Queue.Name)
	}

	want := "queue file\r\n" +
		"\"003-000004-01.DIF\" 003-000004-01.DIF 1 12.5\r\n" +
		"\"003-000005-02.DIF\" 003-000005-02.DIF 2 12.5\r\n"
	if pair.Queue.Text != want {
		t.Fatalf("queue text:\n%q\nwant:\n%q", pair.Queue.Text, want)
	}
	if len(pair.CutFiles) != 2 {
		t.Fatalf("got %d cut files, want 2", len(pair.CutFiles))
	}
	if pair.CutFiles[0].Name != "003-000004-01.DIF" {
		t.Fatalf("cut file name = %q", pair.CutFiles[0].Name)
	}
}

func TestGenerateSkipsRowsWithoutWorkOrder(t *testing.T) {
	groups := []model.Group{
		{
			Thickness:    12.5,
			HasThickness: true,
			Rows: []model.Row{
				{"number": "1"},
				{"WO_Number": "003-000004 01", "number": "2"},
			},
		},
	}
	pair, err := emitter.Generate("", groups)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(pair.Errors) != 1 {
		t.Fatalf("errors = %v, want 1 entry", pair.Errors)
	}
	if len(pair.CutFiles) != 1 {
		t.Fatalf("got %d cut files, want 1", len(pair.CutFiles))
	}
	// The surviving row takes position 1.
	if !strings.Contains(pair.Queue.Text, "003-000004-02.DIF 1 12.5") {
		t.Fatalf("queue text:\n%q", pair.Queue.Text)
	}
}

func TestGenerateSkipsGroupsWithoutThickness(t *testing.T) {
	groups := []model.Group{
		{Rows: []model.Row{{"WO_Number": "003-000004 01"}}},
		{
			Thickness:    10,
			HasThickness: true,
			Rows:         []model.Row{{"WO_Number": "003-000005 01"}},
		},
	}
	pair, err := emitter.Generate("", groups)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(pair.Errors) != 1 || !strings.Contains(pair.Errors[0], "missing thickness") {
		t.Fatalf("errors = %v", pair.Errors)
	}
	if len(pair.CutFiles) != 1 {
		t.Fatalf("got %d cut files, want 1", len(pair.CutFiles))
	}
}

func TestGenerateEmptyGroups(t *testing.T) {
	if _, err := emitter.Generate("", nil); err == nil {
		t.Fatal("Generate with no groups succeeded, want error")
	}
}

func TestFormatCutFileLS19(t *testing.T) {
	row := model.Row{
		"BC1_BC2":    9.17,
		"OZ1_OZ2":    6.2,
		"RC1_radius": 6.54,
		"AC1_radius": 7.65,
		"AC2_radius": 7.87,
		"AC3_radius": 9.34,
		"AC3_width":  0.3,
		"RC1_width":  0.6,
		"AC1_width":  0.9,
		"AC2_width":  0.45,
		"PC_width":   0.2,
		"Type_Code":  "F12",
	}
	text := emitter.FormatCutFile(row, 3)
	lines := strings.Split(strings.TrimSuffix(text, "\r\n"), "\r\n")

	if got, want := len(lines), 117; got != want {
		t.Fatalf("got %d lines, want %d", got, want)
	}
	if lines[1] != `cldfile = "LS19"` {
		t.Fatalf("line 1 = %q", lines[1])
	}
	checks := map[int]string{
		4:  "data(0) = 9.17",
		6:  "data(2) = 6.2",
		8:  "data(4) = 6.54",
		12: "data(8) = 7.65",
		18: "data(14) = 10.2",
		35: "data(31) = 0.0632559776306152",
		78: "data(74) = 0.6",
		79: "data(75) = 0.9",
	}
	for i, want := range checks {
		if lines[i] != want {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want)
		}
	}
	if !strings.Contains(text, "ctnum = 3\r\n") {
		t.Fatal("ctnum did not default to position")
	}
	if !strings.Contains(text, "mtnum = 18\r\n") {
		t.Fatal("mtnum did not default to 18")
	}
	if !strings.Contains(text, `string_data_58 = "F12"`) {
		t.Fatal("type code not placed in string_data_58")
	}
}

func TestFormatCutFileLS28(t *testing.T) {
	row := model.Row{
		"cldfile":    "ls28",
		"BC1_BC2":    7.5,
		"OZ1_OZ2":    8.0,
		"RC1_radius": 8.5,
		"RC1_tor":    8.3,
		"PC1_radius": 14.0,
	}
	text := emitter.FormatCutFile(row, 1)
	lines := strings.Split(strings.TrimSuffix(text, "\r\n"), "\r\n")

	if got, want := len(lines), 135; got != want {
		t.Fatalf("got %d lines, want %d", got, want)
	}
	if lines[1] != `cldfile = "LS28"` {
		t.Fatalf("line 1 = %q", lines[1])
	}
	checks := map[int]string{
		4:  "data(0) = 7.5",
		5:  "data(1) = 7.5",
		8:  "data(4) = 8",
		11: "data(7) = 8.5",
		12: "data(8) = 8.3",
		39: "data(35) = 14",
		40: "data(36) = 14",
		46: "data(42) = -0.3",
		99: "data(95) = 1",
	}
	for i, want := range checks {
		if lines[i] != want {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want)
		}
	}
	if !strings.Contains(text, "bcis_cursel = 2\r\n") {
		t.Fatal("LS28 tail selector missing")
	}
	if !strings.Contains(text, `string_data_75 = "."`) {
		t.Fatal("missing type code did not default to dot")
	}
}

func TestFormatCutFileLayoutSelection(t *testing.T) {
	ls19 := emitter.FormatCutFile(model.Row{}, 1)
	if !strings.Contains(ls19, `cldfile = "LS19"`) {
		t.Fatal("default layout is not LS19")
	}
	ls28 := emitter.FormatCutFile(model.Row{"cldfile": "LS28"}, 1)
	if !strings.Contains(ls28, `cldfile = "LS28"`) {
		t.Fatal("LS28 designator did not select LS28")
	}
}
