package permission

import (
	"fmt"

	vo "github.com/saase/requesthub/internal/domain/request/valueobjects"
	"github.com/saase/requesthub/internal/shared/constants"
	"github.com/saase/requesthub/internal/shared/logger"
)

// TransitionPolicies maps each role to the statuses it may move a request into.
func TransitionPolicies() map[string][]vo.RequestStatus {
	return map[string][]vo.RequestStatus{
		constants.RoleAdmin: {
			vo.StatusAccepted,
			vo.StatusRejected,
			vo.StatusImplementation,
		},
		constants.RoleClient: {
			vo.StatusClientApproved,
		},
	}
}

// InitTransitionPermissions seeds the status transition policies. Existing
// rows are left as they are, so it is safe to run on every startup.
func InitTransitionPermissions(e *Enforcer, log logger.Interface) error {
	for role, statuses := range TransitionPolicies() {
		for _, status := range statuses {
			if err := e.AddPolicy(role, ResourceRequestStatus, status.String()); err != nil {
				log.Errorw("failed to add transition policy",
					"error", err,
					"role", role,
					"status", status)
				return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
					role, ResourceRequestStatus, status, err)
			}
		}
	}

	log.Info("transition permissions initialized successfully")
	return nil
}
