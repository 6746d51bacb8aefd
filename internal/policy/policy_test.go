package policy_test

import (
	"sync"
	"testing"

	"go-hrapp/internal/domain"
	"go-hrapp/internal/policy"
	"go-hrapp/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newEngine(t *testing.T) *policy.Engine {
	t.Helper()
	e, err := policy.NewEngine()
	assert.NoError(t, err)
	return e
}

func TestEngine_Decide(t *testing.T) {
	e := newEngine(t)

	employee := domain.Principal{ID: uuid.New(), Role: domain.RoleEmployee}
	other := domain.Principal{ID: uuid.New(), Role: domain.RoleEmployee}
	manager := domain.Principal{ID: uuid.New(), Role: domain.RoleManager}

	ownPending := policy.Resource{OwnerID: employee.ID, Status: "PENDING"}
	ownApproved := policy.Resource{OwnerID: employee.ID, Status: "APPROVED"}
	ownRejected := policy.Resource{OwnerID: employee.ID, Status: "REJECTED"}
	foreignPending := policy.Resource{OwnerID: other.ID, Status: "PENDING"}
	ownProfile := policy.Resource{OwnerID: employee.ID}
	foreignProfile := policy.Resource{OwnerID: other.ID}

	tests := []struct {
		name    string
		p       domain.Principal
		action  policy.Action
		res     policy.Resource
		allowed bool
		reason  policy.Reason
	}{
		{"employee creates", employee, policy.AbsenceCreate, ownPending, true, policy.ReasonNone},
		{"employee lists own", employee, policy.AbsenceListOwn, policy.Resource{}, true, policy.ReasonNone},
		{"employee lists all", employee, policy.AbsenceListAll, policy.Resource{}, false, policy.ReasonRole},
		{"employee lists pending", employee, policy.AbsenceListPending, policy.Resource{}, false, policy.ReasonRole},
		{"employee lists decided", employee, policy.AbsenceListDecided, policy.Resource{}, false, policy.ReasonRole},
		{"manager lists all", manager, policy.AbsenceListAll, policy.Resource{}, true, policy.ReasonNone},
		{"manager lists pending", manager, policy.AbsenceListPending, policy.Resource{}, true, policy.ReasonNone},
		{"manager lists decided", manager, policy.AbsenceListDecided, policy.Resource{}, true, policy.ReasonNone},

		{"employee reads own", employee, policy.AbsenceRead, ownApproved, true, policy.ReasonNone},
		{"employee reads foreign", employee, policy.AbsenceRead, foreignPending, false, policy.ReasonOwnership},
		{"manager reads foreign", manager, policy.AbsenceRead, foreignPending, true, policy.ReasonNone},

		{"employee decides own", employee, policy.AbsenceDecide, ownPending, false, policy.ReasonRole},
		{"employee decides foreign", employee, policy.AbsenceDecide, foreignPending, false, policy.ReasonRole},
		{"manager decides pending", manager, policy.AbsenceDecide, foreignPending, true, policy.ReasonNone},
		{"manager decides approved", manager, policy.AbsenceDecide, ownApproved, false, policy.ReasonStatus},
		{"manager decides rejected", manager, policy.AbsenceDecide, ownRejected, false, policy.ReasonStatus},

		{"owner deletes pending", employee, policy.AbsenceDelete, ownPending, true, policy.ReasonNone},
		{"owner deletes approved", employee, policy.AbsenceDelete, ownApproved, false, policy.ReasonStatus},
		{"owner deletes rejected", employee, policy.AbsenceDelete, ownRejected, false, policy.ReasonStatus},
		{"employee deletes foreign", employee, policy.AbsenceDelete, foreignPending, false, policy.ReasonOwnership},
		{"manager deletes foreign", manager, policy.AbsenceDelete, foreignPending, false, policy.ReasonOwnership},

		{"employee lists basic", employee, policy.ProfileListBasic, policy.Resource{}, true, policy.ReasonNone},
		{"employee lists detailed", employee, policy.ProfileListDetailed, policy.Resource{}, false, policy.ReasonRole},
		{"manager lists detailed", manager, policy.ProfileListDetailed, policy.Resource{}, true, policy.ReasonNone},
		{"employee reads foreign basic", employee, policy.ProfileReadBasic, foreignProfile, true, policy.ReasonNone},
		{"employee reads own detailed", employee, policy.ProfileReadDetailed, ownProfile, true, policy.ReasonNone},
		{"employee reads foreign detailed", employee, policy.ProfileReadDetailed, foreignProfile, false, policy.ReasonOwnership},
		{"manager reads foreign detailed", manager, policy.ProfileReadDetailed, foreignProfile, true, policy.ReasonNone},
		{"employee updates own", employee, policy.ProfileUpdate, ownProfile, true, policy.ReasonNone},
		{"employee updates foreign", employee, policy.ProfileUpdate, foreignProfile, false, policy.ReasonOwnership},
		{"manager updates foreign", manager, policy.ProfileUpdate, foreignProfile, true, policy.ReasonNone},
		{"employee reassigns manager", employee, policy.ProfileReassignManager, ownProfile, false, policy.ReasonRole},
		{"manager reassigns manager", manager, policy.ProfileReassignManager, foreignProfile, true, policy.ReasonNone},
		{"employee creates profile", employee, policy.ProfileCreate, policy.Resource{}, false, policy.ReasonRole},
		{"manager creates profile", manager, policy.ProfileCreate, policy.Resource{}, true, policy.ReasonNone},

		{"unknown action", manager, policy.Action("absence:edit"), ownPending, false, policy.ReasonRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := e.Decide(tt.p, tt.action, tt.res)
			assert.Equal(t, tt.allowed, d.Allowed)
			assert.Equal(t, tt.reason, d.Reason)
		})
	}
}

func TestEngine_DeleteIffOwnerAndPending(t *testing.T) {
	e := newEngine(t)
	requester := uuid.New()

	for _, role := range []domain.Role{domain.RoleEmployee, domain.RoleManager} {
		for _, owner := range []uuid.UUID{requester, uuid.New()} {
			for _, status := range []string{"PENDING", "APPROVED", "REJECTED"} {
				p := domain.Principal{ID: requester, Role: role}
				d := e.Decide(p, policy.AbsenceDelete, policy.Resource{OwnerID: owner, Status: status})
				assert.Equal(t, owner == requester && status == "PENDING", d.Allowed, "%s %s %s", role, owner, status)
			}
		}
	}
}

func TestEngine_UnknownRoleIsLeastPrivileged(t *testing.T) {
	e := newEngine(t)
	p := domain.Principal{ID: uuid.New(), Role: domain.Role("ADMIN")}

	assert.False(t, e.Decide(p, policy.AbsenceListAll, policy.Resource{}).Allowed)
	assert.False(t, e.Decide(p, policy.AbsenceCreate, policy.Resource{}).Allowed)
	assert.True(t, e.Decide(p, policy.AbsenceRead, policy.Resource{OwnerID: p.ID}).Allowed)
}

func TestDecision_Err(t *testing.T) {
	assert.NoError(t, policy.Decision{Allowed: true}.Err())
	assert.ErrorIs(t, policy.Decision{Reason: policy.ReasonOwnership}.Err(), apperror.ErrAccessDenied)
}

func TestEngine_ConcurrentDecide(t *testing.T) {
	e := newEngine(t)
	manager := domain.Principal{ID: uuid.New(), Role: domain.RoleManager}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, e.Decide(manager, policy.AbsenceListAll, policy.Resource{}).Allowed)
		}()
	}
	wg.Wait()
}
