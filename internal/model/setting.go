package model

import "time"

// Well-known setting keys.
const (
	SettingNotificationGatewayURL   = "notification_gateway_url"
	SettingNotificationGatewayToken = "notification_gateway_token"
)

// Setting represents a key/value configuration entry. Encrypted settings
// store a fernet token in the value column.
type Setting struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Encrypted bool      `json:"encrypted"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}
