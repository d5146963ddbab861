package models

// SetupRequest represents the application state for one setup run
type SetupRequest struct {
	ConfigPath string
	Root       string
	ValuesFile string
	Verbose    bool
}

// NewSetupRequest creates a request with empty overrides
func NewSetupRequest() *SetupRequest {
	return &SetupRequest{}
}
