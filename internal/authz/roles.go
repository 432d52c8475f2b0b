package authz

import "dealpipeline/internal/models"

// Operation names every role-gated action on the API. Handlers never check
// roles ad hoc; the route table attaches the operation and the middleware
// consults Allowed.
type Operation string

const (
	OpListDeals      Operation = "deals.list"
	OpGetDeal        Operation = "deals.get"
	OpCreateDeal     Operation = "deals.create"
	OpUpdateDeal     Operation = "deals.update"
	OpDeleteDeal     Operation = "deals.delete"
	OpListActivities Operation = "activities.list"
	OpAddComment     Operation = "activities.comment"
	OpCastVote       Operation = "votes.cast"
	OpGetVote        Operation = "votes.get"
	OpListVotes      Operation = "votes.list"
	OpApproveDeal    Operation = "deals.approve"
	OpDeclineDeal    Operation = "deals.decline"
	OpGetMemo        Operation = "memos.get"
	OpCreateMemo     Operation = "memos.create"
	OpUpdateMemo     Operation = "memos.update"
	OpListVersions   Operation = "memos.versions"
	OpExportMemo     Operation = "memos.export"
	OpManageUsers    Operation = "users.manage"
)

var anyAuthenticated = []string{models.RoleAdmin, models.RoleAnalyst, models.RolePartner}

// permissions is the authoritative role table. A missing operation permits
// nobody.
var permissions = map[Operation][]string{
	OpListDeals:      anyAuthenticated,
	OpGetDeal:        anyAuthenticated,
	OpCreateDeal:     {models.RoleAdmin, models.RoleAnalyst},
	OpUpdateDeal:     {models.RoleAdmin, models.RoleAnalyst},
	OpDeleteDeal:     {models.RoleAdmin, models.RoleAnalyst},
	OpListActivities: anyAuthenticated,
	OpAddComment:     anyAuthenticated,
	OpCastVote:       {models.RolePartner},
	OpGetVote:        anyAuthenticated,
	OpListVotes:      anyAuthenticated,
	OpApproveDeal:    {models.RolePartner},
	OpDeclineDeal:    {models.RolePartner},
	OpGetMemo:        anyAuthenticated,
	OpCreateMemo:     {models.RoleAdmin, models.RoleAnalyst},
	OpUpdateMemo:     {models.RoleAdmin, models.RoleAnalyst},
	OpListVersions:   anyAuthenticated,
	OpExportMemo:     anyAuthenticated,
	OpManageUsers:    {models.RoleAdmin},
}

func Allowed(role string, op Operation) bool {
	for _, r := range permissions[op] {
		if r == role {
			return true
		}
	}
	return false
}
