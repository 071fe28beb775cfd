package request

// UpdateSettingRequest is the payload for writing a setting value.
type UpdateSettingRequest struct {
	Value     string `json:"value"`
	Encrypted bool   `json:"encrypted"`
}
