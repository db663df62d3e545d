// audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

type AuditLog struct {
	Timestamp     time.Time       `json:"timestamp"`
	SubscriberID  string          `json:"subscriber_id"`
	Action        string          `json:"action"`
	ChangeDetails json.RawMessage `json:"change_details,omitempty"`
}
