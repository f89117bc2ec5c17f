package models

import "time"

type AuditLog struct {
	ID         string    `bson:"_id,omitempty"`
	UserID     string    `bson:"userId"`
	Action     string    `bson:"action"`
	Resource   string    `bson:"resource"`
	ResourceID string    `bson:"resourceId,omitempty"`
	Detail     string    `bson:"detail,omitempty"`
	RequestID  string    `bson:"requestId,omitempty"`
	OccurredAt time.Time `bson:"occurredAt"`
}
