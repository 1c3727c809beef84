package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tshirt-design-api/internal/domain"
)

func TestDecide(t *testing.T) {
	design := &domain.Design{ID: "d1", OwnerID: "u1"}

	tests := []struct {
		name        string
		caller      domain.Identity
		allowed     bool
		canApprove  bool
		canSubmit   bool
	}{
		{"owner", domain.Identity{ID: "u1", Role: domain.RoleUser}, true, false, true},
		{"admin not owner", domain.Identity{ID: "u2", Role: domain.RoleAdmin}, true, true, true},
		{"admin who owns", domain.Identity{ID: "u1", Role: domain.RoleAdmin}, true, false, true},
		{"stranger", domain.Identity{ID: "u2", Role: domain.RoleUser}, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := decide(tt.caller, design)
			require.Equal(t, tt.allowed, dec.Allowed)
			require.Equal(t, tt.canApprove, dec.CanSetStatus(domain.StatusApproved))
			require.Equal(t, tt.canSubmit, dec.CanSetStatus(domain.StatusSubmitted))
			require.False(t, dec.CanSetStatus(domain.Status("archived")))
		})
	}
}
