package domain

// Booking lifecycle statuses. Transitions are deliberately unconstrained:
// the admin UI may move a booking between any two statuses.
const (
	BookingPending    = "pending"
	BookingConfirmed  = "confirmed"
	BookingInProgress = "in_progress"
	BookingCompleted  = "completed"
	BookingCancelled  = "cancelled"
)

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

const (
	DriverAvailable = "available"
	DriverBusy      = "busy"
	DriverOffline   = "offline"
)

const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
	ApplicationInactive = "inactive"
)

var bookingStatuses = map[string]bool{
	BookingPending:    true,
	BookingConfirmed:  true,
	BookingInProgress: true,
	BookingCompleted:  true,
	BookingCancelled:  true,
}

var paymentStatuses = map[string]bool{
	PaymentPending:  true,
	PaymentPaid:     true,
	PaymentRefunded: true,
}

var driverStatuses = map[string]bool{
	DriverAvailable: true,
	DriverBusy:      true,
	DriverOffline:   true,
}

var applicationStatuses = map[string]bool{
	ApplicationPending:  true,
	ApplicationApproved: true,
	ApplicationRejected: true,
	ApplicationInactive: true,
}

func ValidBookingStatus(s string) bool     { return bookingStatuses[s] }
func ValidPaymentStatus(s string) bool     { return paymentStatuses[s] }
func ValidDriverStatus(s string) bool      { return driverStatuses[s] }
func ValidApplicationStatus(s string) bool { return applicationStatuses[s] }
