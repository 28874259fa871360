package pricing

import "tidybook/models"

// EvaluateCompatibility checks a candidate add-on against the current
// selection. An item is blocked when a prerequisite is missing or a
// conflicting item is already selected; conflicts are checked against both
// the add-on and reduction selection sets. Recommendations are informational
// and never block.
//
// Selections are never auto-removed: if an earlier pick becomes contradicted
// by a later one it is only flagged via HasCompatibilityIssue, matching the
// configurator's permissive behavior.
func EvaluateCompatibility(addOn models.RoomAddOn, selectedAddOns, selectedReductions []string) models.CompatibilityStatus {
	selected := make(map[string]bool, len(selectedAddOns)+len(selectedReductions))
	for _, id := range selectedAddOns {
		selected[id] = true
	}
	for _, id := range selectedReductions {
		selected[id] = true
	}

	status := models.CompatibilityStatus{AddOnID: addOn.ID}

	for _, required := range addOn.Requires {
		if !selected[required] {
			status.MissingRequires = append(status.MissingRequires, required)
		}
	}
	for _, conflict := range addOn.Conflicts {
		if selected[conflict] {
			status.ActiveConflicts = append(status.ActiveConflicts, conflict)
		}
	}
	for _, companion := range addOn.RecommendedWith {
		if selected[companion] {
			status.Recommended = true
			break
		}
	}

	status.Blocked = len(status.MissingRequires) > 0 || len(status.ActiveConflicts) > 0
	status.HasCompatibilityIssue = len(status.ActiveConflicts) > 0
	return status
}

// EvaluateAddOn resolves an add-on id through the catalog and evaluates it
// against the current selection. Unknown ids return an unblocked zero status.
func (s *DefaultPricingService) EvaluateAddOn(roomType, addOnID string, selectedAddOns, selectedReductions []string) models.CompatibilityStatus {
	for _, addOn := range s.Catalog.GetRoomAddOns(roomType) {
		if addOn.ID == addOnID {
			return EvaluateCompatibility(addOn, selectedAddOns, selectedReductions)
		}
	}
	return models.CompatibilityStatus{AddOnID: addOnID}
}
