package domain

// Notification types and priorities as reported by the notification service.
const (
	NotificationTypeInfo    = "INFO"
	NotificationTypeWarning = "WARNING"
	NotificationTypeError   = "ERROR"
	NotificationTypeSuccess = "SUCCESS"

	PriorityLow    = "LOW"
	PriorityNormal = "NORMAL"
	PriorityHigh   = "HIGH"
)

// Notification mirrors the notification service's DTO. The read flag
// serializes as "read" on the wire (Jackson boolean-getter convention
// upstream).
type Notification struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type,omitempty"`
	Read      bool   `json:"read"`
	Priority  string `json:"priority,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
