package context

import (
	"context"

	"github.com/anhlog/wms/constant"
)

func GetActorID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.ActorIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

// GetCustomerID returns the tenant the caller is scoped to. Admin tokens carry
// no customer claim, so the second return is false for them.
func GetCustomerID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.CustomerIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetRole(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.RoleKey)
	if v == nil {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}
