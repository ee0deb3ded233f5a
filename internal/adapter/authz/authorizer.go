package authz

import (
	"context"

	"github.com/google/uuid"
)

// ActionAuthorizer is a minimal gate in front of the lifecycle and export
// operations: a known actor may perform the allow-listed booking actions.
// Session handling stays in the external auth collaborator.
type ActionAuthorizer struct {
	allowed map[string]struct{}
}

func NewActionAuthorizer() *ActionAuthorizer {
	actions := []string{"create", "approve", "pay", "cancel", "history", "export", "export_status", "export_download"}

	allowed := make(map[string]struct{}, len(actions))
	for _, a := range actions {
		allowed[a] = struct{}{}
	}

	return &ActionAuthorizer{allowed: allowed}
}

func (a *ActionAuthorizer) Authorize(ctx context.Context, actor uuid.UUID, action, resource string) bool {
	if actor == uuid.Nil {
		return false
	}

	_, ok := a.allowed[action]

	return ok
}
