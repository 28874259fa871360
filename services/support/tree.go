package support

import "tidybook/models"

// The scripted support tree. Every conversation starts at the root node;
// replies walk to child nodes until a terminal action resolves or hands off.

const rootNodeID = "root"

var supportNodes = map[string]models.SupportNode{
	rootNodeID: {
		ID:      rootNodeID,
		Message: "Hi! What can we help you with today?",
		Options: []models.SupportOption{
			{Label: "Pricing questions", Next: "pricing"},
			{Label: "My booking", Next: "booking"},
			{Label: "Service availability", Next: "availability"},
			{Label: "Something else", Next: "other"},
		},
	},
	"pricing": {
		ID:      "pricing",
		Message: "What would you like to know about pricing?",
		Options: []models.SupportOption{
			{Label: "Why did my total change?", Next: "pricing-total"},
			{Label: "Discounts and billing plans", Next: "pricing-discounts"},
			{Label: "A room shows 'Email for Pricing'", Next: "pricing-tbd"},
		},
	},
	"pricing-total": {
		ID: "pricing-total",
		Message: "Your total compounds in stages: room base prices, a cleanliness " +
			"multiplier, schedule surcharge and discount, billing plan discount, the " +
			"video recording discount, and a flat service fee. Changing any input " +
			"recomputes everything.",
		Options: []models.SupportOption{
			{Label: "That answers it", Next: "resolved"},
			{Label: "I still need help", Next: "handoff"},
		},
	},
	"pricing-discounts": {
		ID: "pricing-discounts",
		Message: "Weekly schedules earn the biggest schedule discount, and yearly " +
			"billing takes a further 18% off. Allowing video recording is a flat $25 off.",
		Options: []models.SupportOption{
			{Label: "That answers it", Next: "resolved"},
			{Label: "I still need help", Next: "handoff"},
		},
	},
	"pricing-tbd": {
		ID: "pricing-tbd",
		Message: "Unusual spaces are priced individually. Email us a photo and rough " +
			"dimensions and we'll reply with a quote within one business day.",
		Action: models.SupportActionEmail,
	},
	"booking": {
		ID:      "booking",
		Message: "What do you need to change about your booking?",
		Options: []models.SupportOption{
			{Label: "Reschedule a visit", Next: "handoff"},
			{Label: "Cancel an order", Next: "booking-cancel"},
		},
	},
	"booking-cancel": {
		ID: "booking-cancel",
		Message: "Cancellations are free up to 24 hours before the visit. Within 24 " +
			"hours the service fee is kept. Shall we connect you to an agent to cancel?",
		Options: []models.SupportOption{
			{Label: "Yes, connect me", Next: "handoff"},
			{Label: "No, never mind", Next: "resolved"},
		},
	},
	"availability": {
		ID: "availability",
		Message: "Standard service covers cleanliness levels 1-2. Level 3 needs our " +
			"detailing service, and level 4 homes always start with a manual quote.",
		Options: []models.SupportOption{
			{Label: "Request a manual quote", Next: "handoff"},
			{Label: "That answers it", Next: "resolved"},
		},
	},
	"other": {
		ID:      "other",
		Message: "No problem, we'll connect you with a human.",
		Action:  models.SupportActionHandoff,
	},
	"resolved": {
		ID:      "resolved",
		Message: "Glad we could help! Anything else, just start a new chat.",
		Action:  models.SupportActionResolve,
	},
	"handoff": {
		ID:      "handoff",
		Message: "Connecting you to our support team. Expect a reply within a few minutes.",
		Action:  models.SupportActionHandoff,
	},
}

// SupportService walks the scripted support tree.
type SupportService interface {
	Root() models.SupportNode
	Node(id string) models.SupportNode
	Reply(nodeID string, optionIndex int) models.SupportNode
}

// DefaultSupportService implements SupportService over the static tree.
type DefaultSupportService struct{}

// Root returns the conversation entry point.
func (s *DefaultSupportService) Root() models.SupportNode {
	return supportNodes[rootNodeID]
}

// Node returns a node by id, falling back to the root for unknown ids so a
// stale client never dead-ends.
func (s *DefaultSupportService) Node(id string) models.SupportNode {
	if node, ok := supportNodes[id]; ok {
		return node
	}
	return supportNodes[rootNodeID]
}

// Reply follows the chosen option from a node. Out-of-range options return
// the node itself unchanged.
func (s *DefaultSupportService) Reply(nodeID string, optionIndex int) models.SupportNode {
	node := s.Node(nodeID)
	if optionIndex < 0 || optionIndex >= len(node.Options) {
		return node
	}
	return s.Node(node.Options[optionIndex].Next)
}
