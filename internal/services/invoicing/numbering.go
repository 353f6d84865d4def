package invoicing

import (
	"fmt"
	"strconv"
	"strings"
)

// NumberingPolicy allocates the next human-facing invoice number for one
// prefix. Allocation runs exactly once, at invoice creation.
type NumberingPolicy struct {
	Prefix         string
	StartingNumber int
}

// Next scans the existing "{prefix}-NNN" numbers for the highest numeric
// suffix, falling back to StartingNumber-1 when none match, and returns that
// plus one, zero-padded to 3 digits. Entries with a foreign prefix or a
// non-numeric suffix are ignored.
func (p NumberingPolicy) Next(existing []string) string {
	highest := p.StartingNumber - 1
	for _, number := range existing {
		suffix, ok := strings.CutPrefix(number, p.Prefix+"-")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s-%03d", p.Prefix, highest+1)
}
