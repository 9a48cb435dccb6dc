package quotations

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

type lastNumberFinder interface {
	LastNumberForYear(ctx context.Context, year int) (string, error)
}

// Numbering derives the next sequential quotation number per calendar year.
//
// It reads the latest issued number and adds one, with no locking: two
// concurrent creates can derive the same number, and the unique index on
// quotation_no is the backstop. Callers see that as a duplicate error and
// may retry, which re-reads the committed state.
type Numbering struct {
	repo lastNumberFinder
}

// NewNumbering builds a numbering service over the quotation store.
func NewNumbering(repo lastNumberFinder) *Numbering {
	return &Numbering{repo: repo}
}

// NextNumber returns the next number in the QT-<year>-NNNN sequence.
func (n *Numbering) NextNumber(ctx context.Context, year int) (string, error) {
	last, err := n.repo.LastNumberForYear(ctx, year)
	if err != nil {
		return "", err
	}
	return FormatNumber(year, nextSequence(last)), nil
}

// FormatNumber renders a quotation number, zero-padding the counter to four
// digits. Counters past 9999 simply grow wider.
func FormatNumber(year, seq int) string {
	return fmt.Sprintf("QT-%d-%04d", year, seq)
}

// nextSequence parses the trailing counter of the last issued number. Any
// parse failure restarts the sequence at 1, matching how the system has
// always treated unparseable numbers.
func nextSequence(last string) int {
	if last == "" {
		return 1
	}
	parts := strings.Split(last, "-")
	counter, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || counter < 1 {
		return 1
	}
	return counter + 1
}
