package pricing

import "tidybook/models"

// IsServiceAvailable reports whether a (serviceType, cleanlinessLevel)
// combination can be booked online. Level 4 always needs a manual quote, and
// the standard service stops at level 2; detailing handles level 3.
func IsServiceAvailable(serviceType string, cleanlinessLevel int) bool {
	if cleanlinessLevel == 4 {
		return false
	}
	if serviceType == models.ServiceTypeStandard && cleanlinessLevel > 2 {
		return false
	}
	return true
}
