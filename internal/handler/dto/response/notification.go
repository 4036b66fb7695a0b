package response

import (
	"laborlink/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type NotificationResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
	ReadAt    *int64 `json:"read_at,omitempty"`
}

func FromNotificationView(v *queries.NotificationView) *NotificationResponse {
	var resp NotificationResponse
	_ = copier.Copy(&resp, v)

	resp.ID = v.ID.String()
	resp.CreatedAt = v.CreatedAt.Unix()
	if v.ReadAt != nil {
		ts := v.ReadAt.Unix()
		resp.ReadAt = &ts
	} else {
		resp.ReadAt = nil
	}

	return &resp
}

func FromNotificationList(items []*queries.NotificationView) []*NotificationResponse {
	res := make([]*NotificationResponse, len(items))
	for i, it := range items {
		res[i] = FromNotificationView(it)
	}
	return res
}
