package workorder

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Work-order numbers read "SSS-NNNNNN PP": a 3-digit billing account, a
// 6-digit sequence and a print count. The current grammar uses 2 print
// digits with 01 as the original; the legacy grammar used 1 digit with 0
// as the original and is still accepted on parse.
const (
	MinSequence = 1
	MaxSequence = 999999

	legacyMaxPrint  = 9
	currentMaxPrint = 99
)

var numberRe = regexp.MustCompile(`^(\d{3})-(\d{6}) (\d{1,2})$`)

// Number is a parsed work-order identifier. PrintWidth records whether
// the text used the legacy 1-digit or current 2-digit print count, so
// formatting round-trips exactly.
type Number struct {
	Account    string
	Sequence   int
	PrintCount int
	PrintWidth int
}

// BaseNumber is the identity that survives reprints.
func (n Number) BaseNumber() string {
	return fmt.Sprintf("%s-%06d", n.Account, n.Sequence)
}

// String renders the number in its recorded grammar.
func (n Number) String() string {
	return fmt.Sprintf("%s-%06d %0*d", n.Account, n.Sequence, n.PrintWidth, n.PrintCount)
}

// IsReprint reports whether the number is past its original print.
func (n Number) IsReprint() bool {
	if n.PrintWidth == 1 {
		return n.PrintCount > 0
	}
	return n.PrintCount > 1
}

// Format renders account, sequence and print count in the current grammar.
func Format(account string, sequence, printCount int) (string, error) {
	n, err := newNumber(account, sequence, printCount, 2)
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

// Parse accepts both grammars and preserves the print-count width.
func Parse(text string) (Number, error) {
	m := numberRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return Number{}, fmt.Errorf("invalid work order number %q: expected SSS-NNNNNN PP", text)
	}
	seq, _ := strconv.Atoi(m[2])
	pc, _ := strconv.Atoi(m[3])
	return newNumber(m[1], seq, pc, len(m[3]))
}

// IsValid reports whether text parses as a work-order number.
func IsValid(text string) bool {
	_, err := Parse(text)
	return err == nil
}

// GenerateNew formats an original work order in the current grammar.
func GenerateNew(account string, sequence int) (string, error) {
	return Format(account, sequence, 1)
}

// GenerateReprint bumps the print count of a previous number, keeping its
// grammar. A count already at the grammar's maximum is an error, never a
// wrap.
func GenerateReprint(previous string) (string, error) {
	n, err := Parse(previous)
	if err != nil {
		return "", err
	}
	max := currentMaxPrint
	if n.PrintWidth == 1 {
		max = legacyMaxPrint
	}
	if n.PrintCount >= max {
		return "", fmt.Errorf("work order %s reached print count limit %d", previous, max)
	}
	n.PrintCount++
	return n.String(), nil
}

// NextSequence increments a sequence and enforces the 6-digit cap.
func NextSequence(sequence int) (int, error) {
	next := sequence + 1
	if next > MaxSequence {
		return 0, fmt.Errorf("sequence %d exceeds maximum %d", next, MaxSequence)
	}
	return next, nil
}

func newNumber(account string, sequence, printCount, printWidth int) (Number, error) {
	if len(account) != 3 || strings.Trim(account, "0123456789") != "" {
		return Number{}, fmt.Errorf("invalid account %q: expected 3 digits", account)
	}
	if sequence < MinSequence || sequence > MaxSequence {
		return Number{}, fmt.Errorf("sequence %d out of range %d-%d", sequence, MinSequence, MaxSequence)
	}
	min, max := 1, currentMaxPrint
	if printWidth == 1 {
		min, max = 0, legacyMaxPrint
	}
	if printCount < min || printCount > max {
		return Number{}, fmt.Errorf("print count %d out of range %d-%d", printCount, min, max)
	}
	return Number{Account: account, Sequence: sequence, PrintCount: printCount, PrintWidth: printWidth}, nil
}
