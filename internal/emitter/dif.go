package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/angelglnd-coder/cler-vision-app/internal/model"
)

// Cut files are positional: a fixed numeric array whose slots were
// measured from reference DIF files, followed by named scalar fields. Two
// cutter families exist; LS19 uses an 81-slot array, LS28 a 99-slot one.
// Unassigned slots and the listed constants must be byte-exact or the
// cutting equipment rejects the file.

const crlf = "\r\n"

const (
	defaultMTNum = 18
)

// sv serializes a scalar the way the reference files do: numbers in their
// shortest decimal form, everything else verbatim.
func sv(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case string:
		s := strings.TrimSpace(t)
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		return t
	default:
		return fmt.Sprint(t)
	}
}

// num reads the first present numeric field, else the fallback.
func num(row model.Row, fallback float64, fields ...string) float64 {
	for _, f := range fields {
		v, found := row[f]
		if !found || v == nil {
			continue
		}
		switch t := v.(type) {
		case float64:
			return t
		case int:
			return float64(t)
		case string:
			if n, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
				return n
			}
		}
	}
	return fallback
}

// FormatCutFile renders the cut file for one row. The cladding designator
// selects the layout; anything other than LS28 falls back to LS19.
func FormatCutFile(row model.Row, position int) string {
	cld := strings.ToUpper(strings.TrimSpace(row.String("cldfile")))
	mtnum := int(num(row, defaultMTNum, "mtnum"))
	ctnum := int(num(row, float64(position), "ctnum"))
	if cld == "LS28" {
		return buildLS28(row, mtnum, ctnum)
	}
	return buildLS19(row, mtnum, ctnum)
}

func buildLS19(row model.Row, mtnum, ctnum int) string {
	data := make([]float64, 81)

	data[0] = num(row, 0, "BC1_BC2")
	data[2] = num(row, 0, "OZ1_OZ2")
	data[3] = num(row, 0, "AC3_width")
	data[4] = num(row, 0, "RC1_radius")
	data[8] = num(row, 0, "AC1_radius")
	data[12] = num(row, 0, "AC2_radius")

	data[7] = num(row, 0, "AC3_width")
	data[11] = num(row, 0, "AC3_width")
	data[15] = num(row, 0, "AC3_width")
	data[16] = num(row, 0, "AC3_radius")
	data[19] = num(row, 0, "AC3_width")
	data[23] = num(row, 0, "AC3_width")
	data[47] = num(row, 0, "PC_width", "PC1_width")
	data[49] = num(row, 0, "CT_width", "CT")
	data[61] = num(row, 0, "CT_width", "CT")
	data[66] = num(row, 0, "PC_width", "PC1_width")

	data[74] = num(row, 0.6, "RC1_width")
	data[75] = num(row, 0.8, "AC1_width")
	data[76] = num(row, 0.4, "AC2_width")
	data[77] = num(row, 0.3, "AC3_width")
	data[78] = num(row, 0.2, "PC_width", "PC1_width")

	// Fixed slots measured from reference files.
	data[14] = 10.2
	data[18] = 10.8
	data[20] = 12
	data[22] = 11.2
	data[26] = 11.2
	data[30] = 11.2
	data[31] = 0.0632559776306152
	data[38] = 9.4114102621422
	data[40] = 7.2
	data[41] = 0.5
	data[42] = 7.76623141893172
	data[44] = 11.2
	data[50] = 1.8
	data[52] = 270
	data[53] = 10
	data[54] = 0.3
	data[55] = 0.15
	data[56] = 0.15
	data[59] = 4.15
	data[60] = 270
	data[64] = 4.3
	data[65] = 270
	data[67] = 2
	data[68] = 0.185
	data[69] = 0.185
	data[70] = 0.13
	data[71] = 0.001
	data[72] = 1
	data[73] = 2

	typeCode := sv(row["Type_Code"])
	if typeCode == "" {
		typeCode = "."
	}

	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteString(crlf)
	}
	line(`DIMC cldfile(9)`)
	line(`cldfile = "LS19"`)
	line(`jnum = 0`)
	line(`DIMN data(81)`)
	for i, v := range data {
		line(fmt.Sprintf("data(%d) = %s", i, sv(v)))
	}
	line(`DIMN tordat(4)`)
	line(`tordat(0) = 0`)
	line(`tordat(1) = 0`)
	line(`tordat(2) = 0`)
	line(`tordat(3) = 0`)
	line(`side = 0`)
	line(fmt.Sprintf("mtnum = %d", mtnum))
	line(fmt.Sprintf("ctnum = %d", ctnum))
	line(`curtop = 0`)
	line(`cursel = 0`)
	line(`hcursel = 0`)
	line(`DIMC pfname(4,20)`)
	line(`pfname(0) = ""`)
	line(`pfname(1) = ""`)
	line(`pfname(2) = ""`)
	line(`pfname(3) = ""`)
	line(`jobs_curtop = 0`)
	line(`jobs_cursel = 0`)
	line(`bcis_curtop = 0`)
	line(`bcis_cursel = 0`)
	line(`DIMC string_data_58(21)`)
	line(fmt.Sprintf("string_data_58 = %q", typeCode))
	line(`DIMC string_data_63(21)`)
	line(`string_data_63 = "."`)
	line(`DIMC choices_32(3,21)`)
	line(`choices_32(0) = "NONE"`)
	line(`choices_32(1) = "SHOULDER"`)
	line(`choices_32(2) = "DIAMETER"`)
	line(`DIMC choices_58(1,21)`)
	line(fmt.Sprintf("choices_58(0) = %q", typeCode))
	line(`DIMC choices_63(1,21)`)
	line(`choices_63(0) = "."`)
	return b.String()
}

func buildLS28(row model.Row, mtnum, ctnum int) string {
	data := make([]float64, 99)

	data[0] = num(row, 0, "BC1_BC2")
	data[1] = num(row, 0, "BC1_BC2")
	data[4] = num(row, 0, "OZ1_OZ2")

	data[7] = num(row, 0, "RC1_radius")
	data[8] = num(row, 0, "RC1_tor")
	data[14] = num(row, 0, "AC1_radius")
	data[15] = num(row, 0, "AC1_tor")
	data[21] = num(row, 0, "AC2_radius")
	data[22] = num(row, 0, "AC2_tor")
	data[28] = num(row, 0, "AC3_radius")
	data[29] = num(row, 0, "AC3_tor")
	data[35] = num(row, 0, "PC1_radius")
	data[36] = num(row, 0, "PC1_radius")

	// Fixed slots measured from reference files.
	data[5] = 0.1
	data[6] = 0.1
	data[11] = 6.8
	data[12] = 0.1
	data[13] = 0.1
	data[18] = 8.8
	data[19] = 0.1
	data[25] = 27.34
	data[26] = 0.1
	data[27] = 0.1
	data[32] = 27.94
	data[33] = 0.1
	data[34] = 0.1
	data[39] = 28.34
	data[41] = 2
	data[42] = -0.3
	data[43] = 1.5
	data[51] = 7.2
	data[52] = 1
	data[53] = 1
	data[59] = 1
	data[60] = 1
	data[66] = 0.28
	data[67] = 1.8
	data[68] = 0
	data[69] = 270
	data[70] = 10
	data[71] = 0.3
	data[72] = 0.15
	data[73] = 0.15
	data[76] = 4.15
	data[77] = 270
	data[78] = 0.25
	data[82] = 270
	data[83] = 0.2
	data[84] = 2
	data[85] = 0.2
	data[86] = 0.2
	data[87] = 0.2
	data[88] = 0.2

	data[94] = num(row, 0.6, "RC1_width")
	data[95] = num(row, 1.0, "AC1_width")
	data[96] = num(row, 0.5, "AC2_width")
	data[97] = num(row, 0.3, "AC3_width")
	data[98] = num(row, 0.2, "PC_width", "PC1_width")

	data[89] = 0.13
	data[90] = 0.001
	data[91] = 1.0
	data[92] = 1.0
	data[93] = 2.0

	typeCode := sv(row["Type_Code"])
	if typeCode == "" {
		typeCode = "."
	}

	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteString(crlf)
	}
	line(`DIMC cldfile(9)`)
	line(`cldfile = "LS28"`)
	line(`jnum = 0`)
	line(`DIMN data(99)`)
	for i, v := range data {
		line(fmt.Sprintf("data(%d) = %s", i, sv(v)))
	}
	line(`DIMN tordat(4)`)
	line(`tordat(0) = 0`)
	line(`tordat(1) = 0`)
	line(`tordat(2) = 0`)
	line(`tordat(3) = 0`)
	line(`side = 0`)
	line(fmt.Sprintf("mtnum = %d", mtnum))
	line(fmt.Sprintf("ctnum = %d", ctnum))
	line(`curtop = 0`)
	line(`cursel = 0`)
	line(`hcursel = 0`)
	line(`DIMC pfname(4,20)`)
	line(`pfname(0) = ""`)
	line(`pfname(1) = ""`)
	line(`pfname(2) = ""`)
	line(`pfname(3) = ""`)
	line(`jobs_curtop = 0`)
	line(`jobs_cursel = 0`)
	line(`bcis_curtop = 0`)
	line(`bcis_cursel = 2`)
	line(`DIMC string_data_75(21)`)
	line(fmt.Sprintf("string_data_75 = %q", typeCode))
	line(`DIMC string_data_80(21)`)
	line(`string_data_80 = "."`)
	line(`DIMC choices_41(3,21)`)
	line(`choices_41(0) = "NONE"`)
	line(`choices_41(1) = "SHOULDER"`)
	line(`choices_41(2) = "DIAMETER"`)
	line(`DIMC choices_75(1,21)`)
	line(fmt.Sprintf("choices_75(0) = %q", typeCode))
	line(`DIMC choices_80(1,21)`)
	line(`choices_80(0) = "."`)
	return b.String()
}
