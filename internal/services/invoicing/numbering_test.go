package invoicing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberingPolicy_Next(t *testing.T) {
	tests := []struct {
		name     string
		policy   NumberingPolicy
		existing []string
		want     string
	}{
		{
			name:     "first number with no existing invoices",
			policy:   NumberingPolicy{Prefix: "INV", StartingNumber: 1},
			existing: nil,
			want:     "INV-001",
		},
		{
			name:     "continues from the highest suffix",
			policy:   NumberingPolicy{Prefix: "INV", StartingNumber: 1},
			existing: []string{"INV-001", "INV-002"},
			want:     "INV-003",
		},
		{
			name:     "custom prefix and starting number",
			policy:   NumberingPolicy{Prefix: "ACME", StartingNumber: 5},
			existing: nil,
			want:     "ACME-005",
		},
		{
			name:     "foreign prefixes are ignored",
			policy:   NumberingPolicy{Prefix: "ACME", StartingNumber: 1},
			existing: []string{"INV-009", "ACME-002"},
			want:     "ACME-003",
		},
		{
			name:     "non-numeric suffixes are ignored",
			policy:   NumberingPolicy{Prefix: "INV", StartingNumber: 1},
			existing: []string{"INV-abc", "INV-004"},
			want:     "INV-005",
		},
		{
			name:     "existing numbers below the starting number",
			policy:   NumberingPolicy{Prefix: "INV", StartingNumber: 100},
			existing: []string{"INV-003"},
			want:     "INV-100",
		},
		{
			name:     "grows past three digits",
			policy:   NumberingPolicy{Prefix: "INV", StartingNumber: 1},
			existing: []string{"INV-999"},
			want:     "INV-1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.Next(tt.existing))
		})
	}
}

func TestNumberingPolicy_NextIsMonotonic(t *testing.T) {
	policy := NumberingPolicy{Prefix: "INV", StartingNumber: 1}

	existing := []string{}
	for i := 0; i < 5; i++ {
		next := policy.Next(existing)
		assert.NotContains(t, existing, next)
		existing = append(existing, next)
	}
	assert.Equal(t, []string{"INV-001", "INV-002", "INV-003", "INV-004", "INV-005"}, existing)
}
