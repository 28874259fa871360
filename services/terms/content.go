package terms

func generateTermsOfService() string {
	return `Welcome to Tidybook. By booking a cleaning through our platform you agree
to these terms. Quotes shown during checkout are estimates computed from your
room selections and options; the final amount is confirmed at order time.
Rooms marked as requiring a custom quote are priced by email and are never
included in the online total. Heavily soiled homes (cleanliness level 4) and
standard-service bookings above level 2 require a manual quote before any
visit is scheduled.`
}

func generatePrivacyPolicy() string {
	return `Tidybook stores your contact details, service address, and saved
preferences (last selected rooms, preferred schedule and billing cadence) to
speed up future bookings. Payment card details are handled by our payment
processor and never touch our servers. You can ask us to delete your stored
preferences at any time.`
}

func generateRecordingPolicy() string {
	return `If you opt into video recording, the crew records the visit for quality
assurance and you receive a flat discount on the order. Footage is retained
for 30 days, is never shared outside quality review, and opting in can be
reversed on any future booking.`
}

func generatePaymentPolicy() string {
	return `Pay-per-service orders are charged after each visit. Monthly and yearly
billing plans are charged up front at a discount. Cancellations made at least
24 hours before a scheduled visit are free; later cancellations forfeit the
service fee. Custom-quoted work is invoiced separately.`
}
