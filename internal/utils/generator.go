package utils

import "math/rand"

const (
	bookingNumberPrefix = "NVS-"
	bookingNumberLength = 8
	bookingNumberChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewBookingNumber builds the human-facing booking code (NVS- plus 8 random
// uppercase alphanumerics). Uniqueness is enforced by the DB constraint; the
// caller regenerates on a duplicate-key error.
func NewBookingNumber() string {
	b := make([]byte, bookingNumberLength)
	for i := range b {
		b[i] = bookingNumberChars[rand.Intn(len(bookingNumberChars))]
	}
	return bookingNumberPrefix + string(b)
}
