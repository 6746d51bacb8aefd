package policy

import (
	"go-hrapp/internal/domain"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Role grants only. Ownership and status are checked in Go by the engine.
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

const (
	objAbsence = "absence"
	objProfile = "profile"
)

// Grant names. "*_any" grants lift the ownership requirement.
const (
	grantCreate          = "create"
	grantListOwn         = "list_own"
	grantListAll         = "list_all"
	grantListPending     = "list_pending"
	grantListDecided     = "list_decided"
	grantReadAny         = "read_any"
	grantDecide          = "decide"
	grantDeleteOwn       = "delete_own"
	grantListBasic       = "list_basic"
	grantListDetailed    = "list_detailed"
	grantReadBasicAny    = "read_basic_any"
	grantReadDetailedAny = "read_detailed_any"
	grantUpdateAny       = "update_any"
	grantReassignManager = "reassign_manager"
)

var roleGrants = map[domain.Role][][2]string{
	domain.RoleEmployee: {
		{objAbsence, grantCreate},
		{objAbsence, grantListOwn},
		{objAbsence, grantDeleteOwn},
		{objProfile, grantListBasic},
		{objProfile, grantReadBasicAny},
	},
	domain.RoleManager: {
		{objAbsence, grantCreate},
		{objAbsence, grantListOwn},
		{objAbsence, grantDeleteOwn},
		{objAbsence, grantListAll},
		{objAbsence, grantListPending},
		{objAbsence, grantListDecided},
		{objAbsence, grantReadAny},
		{objAbsence, grantDecide},
		{objProfile, grantListBasic},
		{objProfile, grantListDetailed},
		{objProfile, grantReadBasicAny},
		{objProfile, grantReadDetailedAny},
		{objProfile, grantUpdateAny},
		{objProfile, grantReassignManager},
		{objProfile, grantCreate},
	},
}

func newEnforcer() (*casbin.SyncedEnforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, err
	}

	var rules [][]string
	for role, grants := range roleGrants {
		for _, g := range grants {
			rules = append(rules, []string{string(role), g[0], g[1]})
		}
	}
	if _, err := e.AddPolicies(rules); err != nil {
		return nil, err
	}

	return e, nil
}
