package policy

import (
	"go-hrapp/internal/domain"
	"go-hrapp/internal/shared/apperror"

	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Action string

const (
	AbsenceCreate      Action = "absence:create"
	AbsenceListOwn     Action = "absence:list_own"
	AbsenceListAll     Action = "absence:list_all"
	AbsenceListPending Action = "absence:list_pending"
	AbsenceListDecided Action = "absence:list_decided"
	AbsenceRead        Action = "absence:read"
	AbsenceDecide      Action = "absence:decide"
	AbsenceDelete      Action = "absence:delete"

	ProfileListBasic       Action = "profile:list_basic"
	ProfileListDetailed    Action = "profile:list_detailed"
	ProfileReadBasic       Action = "profile:read_basic"
	ProfileReadDetailed    Action = "profile:read_detailed"
	ProfileUpdate          Action = "profile:update"
	ProfileReassignManager Action = "profile:reassign_manager"
	ProfileCreate          Action = "profile:create"
)

// Resource is what a decision is made about. OwnerID is the requester of an
// absence request or the user a profile belongs to. Status is only used for
// absence requests.
type Resource struct {
	OwnerID uuid.UUID
	Status  string
}

// StatusPending must match the stored absence status.
const StatusPending = "PENDING"

type Reason string

const (
	ReasonNone      Reason = ""
	ReasonRole      Reason = "role"
	ReasonOwnership Reason = "ownership"
	ReasonStatus    Reason = "status"
)

type Decision struct {
	Allowed bool
	Reason  Reason
}

// Err is nil for an allow and ErrAccessDenied for any deny.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return apperror.ErrAccessDenied
}

var allow = Decision{Allowed: true}

func deny(r Reason) Decision {
	return Decision{Allowed: false, Reason: r}
}

// Authorizer is what services depend on; Engine is the only implementation.
type Authorizer interface {
	Decide(p domain.Principal, action Action, res Resource) Decision
}

// Engine answers every (principal, action, resource) with allow or deny.
// Safe for concurrent use.
type Engine struct {
	enforcer *casbin.SyncedEnforcer
	logger   *zap.Logger
}

func NewEngine(logger ...*zap.Logger) (*Engine, error) {
	l := zap.L().Named("policy.engine")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("policy.engine")
	}

	e, err := newEnforcer()
	if err != nil {
		return nil, err
	}
	return &Engine{enforcer: e, logger: l}, nil
}

// granted reports whether role holds grant on obj. An enforcer error is a deny.
func (e *Engine) granted(role domain.Role, obj, grant string) bool {
	ok, err := e.enforcer.Enforce(string(role), obj, grant)
	if err != nil {
		e.logger.Error("enforce failed",
			zap.String("role", string(role)),
			zap.String("object", obj),
			zap.String("grant", grant),
			zap.Error(err),
		)
		return false
	}
	return ok
}

func (e *Engine) Decide(p domain.Principal, action Action, res Resource) Decision {
	isOwner := p.ID != uuid.Nil && p.ID == res.OwnerID

	switch action {
	case AbsenceCreate:
		return e.byRole(p, objAbsence, grantCreate)
	case AbsenceListOwn:
		return e.byRole(p, objAbsence, grantListOwn)
	case AbsenceListAll:
		return e.byRole(p, objAbsence, grantListAll)
	case AbsenceListPending:
		return e.byRole(p, objAbsence, grantListPending)
	case AbsenceListDecided:
		return e.byRole(p, objAbsence, grantListDecided)

	case AbsenceRead:
		if isOwner || e.granted(p.Role, objAbsence, grantReadAny) {
			return allow
		}
		return deny(ReasonOwnership)

	case AbsenceDecide:
		if !e.granted(p.Role, objAbsence, grantDecide) {
			return deny(ReasonRole)
		}
		if res.Status != StatusPending {
			return deny(ReasonStatus)
		}
		return allow

	case AbsenceDelete:
		if !e.granted(p.Role, objAbsence, grantDeleteOwn) {
			return deny(ReasonRole)
		}
		if !isOwner {
			return deny(ReasonOwnership)
		}
		if res.Status != StatusPending {
			return deny(ReasonStatus)
		}
		return allow

	case ProfileListBasic:
		return e.byRole(p, objProfile, grantListBasic)
	case ProfileListDetailed:
		return e.byRole(p, objProfile, grantListDetailed)

	case ProfileReadBasic:
		if isOwner || e.granted(p.Role, objProfile, grantReadBasicAny) {
			return allow
		}
		return deny(ReasonOwnership)
	case ProfileReadDetailed:
		if isOwner || e.granted(p.Role, objProfile, grantReadDetailedAny) {
			return allow
		}
		return deny(ReasonOwnership)
	case ProfileUpdate:
		if isOwner || e.granted(p.Role, objProfile, grantUpdateAny) {
			return allow
		}
		return deny(ReasonOwnership)

	case ProfileReassignManager:
		return e.byRole(p, objProfile, grantReassignManager)
	case ProfileCreate:
		return e.byRole(p, objProfile, grantCreate)
	}

	e.logger.Warn("unknown action denied", zap.String("action", string(action)))
	return deny(ReasonRole)
}

func (e *Engine) byRole(p domain.Principal, obj, grant string) Decision {
	if e.granted(p.Role, obj, grant) {
		return allow
	}
	return deny(ReasonRole)
}
