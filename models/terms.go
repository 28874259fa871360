package models

// TermsSection is one legal document shown in the terms-of-service gate.
type TermsSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
	Version string `json:"version"`
	Updated string `json:"updated"`
}

// TermsStatus reports whether a device has accepted the current terms version.
type TermsStatus struct {
	DeviceID        string `json:"deviceId"`
	CurrentVersion  string `json:"currentVersion"`
	AcceptedVersion string `json:"acceptedVersion,omitempty"`
	Accepted        bool   `json:"accepted"`
}
