package authz_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dealpipeline/internal/authz"
	"dealpipeline/internal/models"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		role string
		op   authz.Operation
		want bool
	}{
		{models.RolePartner, authz.OpCastVote, true},
		{models.RolePartner, authz.OpApproveDeal, true},
		{models.RolePartner, authz.OpDeclineDeal, true},
		{models.RoleAnalyst, authz.OpCastVote, false},
		{models.RoleAdmin, authz.OpApproveDeal, false},

		{models.RoleAnalyst, authz.OpCreateDeal, true},
		{models.RoleAdmin, authz.OpCreateDeal, true},
		{models.RolePartner, authz.OpCreateDeal, false},
		{models.RolePartner, authz.OpUpdateMemo, false},

		{models.RoleAdmin, authz.OpManageUsers, true},
		{models.RoleAnalyst, authz.OpManageUsers, false},
		{models.RolePartner, authz.OpManageUsers, false},

		{models.RolePartner, authz.OpListDeals, true},
		{models.RoleAnalyst, authz.OpListActivities, true},
		{models.RolePartner, authz.OpExportMemo, true},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, authz.Allowed(tc.role, tc.op), "role=%s op=%s", tc.role, tc.op)
	}
}

func TestAllowedUnknown(t *testing.T) {
	require.False(t, authz.Allowed(models.RoleAdmin, authz.Operation("deals.nuke")))
	require.False(t, authz.Allowed("intern", authz.OpListDeals))
	require.False(t, authz.Allowed("", authz.OpListDeals))
}
