package response

import (
	"time"

	"transfer-booking/internal/data/entity"
)

type ActivityResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func ActivityToResponse(activity *entity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:         activity.ID.String(),
		UserID:     activity.UserID.String(),
		Action:     activity.Action,
		Resource:   activity.Resource,
		ResourceID: activity.ResourceID,
		Detail:     activity.Detail,
		CreatedAt:  activity.CreatedAt,
	}
}
