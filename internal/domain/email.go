package domain

// EmailResult is the uniform outcome of a delivery attempt. When the channel
// is in test mode, unconfigured, or the transport fails, Delivered is false
// and the would-be content is captured so callers always get a usable result.
type EmailResult struct {
	Delivered bool   `json:"delivered"`
	Captured  string `json:"captured,omitempty"`
	Reason    string `json:"reason,omitempty"`
}
