package models

// SupportOption is one selectable reply under a support-chat node.
type SupportOption struct {
	Label string `json:"label"`
	Next  string `json:"next"`
}

// Support node actions. Terminal nodes either resolve the conversation or
// hand off to a human channel.
const (
	SupportActionNone    = ""
	SupportActionResolve = "resolve"
	SupportActionHandoff = "handoff"
	SupportActionEmail   = "email"
)

// SupportNode is one message in the scripted support-chat tree.
type SupportNode struct {
	ID      string          `json:"id"`
	Message string          `json:"message"`
	Options []SupportOption `json:"options,omitempty"`
	Action  string          `json:"action,omitempty"`
}
