package shared

import (
	"github.com/aljonb/sched/internal/domain/business"
	"github.com/aljonb/sched/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated user an owner-side operation runs for.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func NewActor(userID uuid.UUID, role user.Role) Actor {
	return Actor{UserID: userID, Role: role}
}

func (a Actor) CanManage(b *business.Business) bool {
	return b != nil && b.IsManagedBy(a.UserID, a.Role.IsAdmin())
}
