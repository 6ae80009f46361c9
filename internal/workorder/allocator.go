package workorder

import (
	"fmt"
	"strings"

	"github.com/angelglnd-coder/cler-vision-app/internal/model"
)

// AuthorityResponse is the per-account state the sequence authority
// reports.
type AuthorityResponse struct {
	Prefix           string `json:"prefix"`
	SequentialNumber int    `json:"sequentialNumber"`
	LatestWoNumber   string `json:"latestWoNumber"`
	NextNumber       int    `json:"nextNumber"`
}

// Authority hands out the next available sequence per billing account.
// The allocator queries it once per distinct account per batch.
type Authority interface {
	NextNumber(account string) (AuthorityResponse, error)
}

// Allocator assigns work-order numbers to batches of normalized rows.
type Allocator struct {
	authority Authority
}

// NewAllocator builds an allocator backed by the given authority.
func NewAllocator(authority Authority) *Allocator {
	return &Allocator{authority: authority}
}

// NormalizeAccount reduces a Sold To value to the 3-digit account code:
// strip non-digits, take the first three, zero-pad on the left.
func NormalizeAccount(soldTo string) string {
	var digits strings.Builder
	for _, r := range soldTo {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	s := digits.String()
	if s == "" {
		return ""
	}
	if len(s) > 3 {
		s = s[:3]
	}
	return strings.Repeat("0", 3-len(s)) + s
}

// Assign numbers every row in order. Accounts are seeded once from the
// authority and incremented locally, so sequences within an account are
// strictly increasing in row order. An authority failure or a sequence
// past the cap aborts the whole batch; rows are only mutated after every
// assignment succeeded.
func (a *Allocator) Assign(rows []model.Row) ([]string, error) {
	accounts := make([]string, len(rows))
	var diagnostics []string
	next := make(map[string]int)

	for i, row := range rows {
		soldTo := row.String("Sold_To")
		account := NormalizeAccount(soldTo)
		accounts[i] = account
		if account == "" {
			diagnostics = append(diagnostics, fmt.Sprintf("row %d: missing Sold To, no work order assigned", i+1))
			continue
		}
		if _, seeded := next[account]; seeded {
			continue
		}
		resp, err := a.authority.NextNumber(account)
		if err != nil {
			return nil, fmt.Errorf("query next number for account %s: %w", account, err)
		}
		next[account] = resp.NextNumber
	}

	assigned := make([]string, len(rows))
	for i, account := range accounts {
		if account == "" {
			continue
		}
		seq := next[account]
		wo, err := GenerateNew(account, seq)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		assigned[i] = wo
		next[account] = seq + 1
	}

	for i, wo := range assigned {
		if wo == "" {
			continue
		}
		rows[i]["WO_Number"] = wo
		rows[i]["Account_ID"] = accounts[i]
	}
	return diagnostics, nil
}
