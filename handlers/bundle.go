package handlers

import (
	accountRepo "playfield/database/repository/account"
	"playfield/services/account"
	"playfield/services/booking"
	"playfield/services/facility"
	"playfield/services/timeslot"
)

// HandlerBundle groups the endpoint handlers with the services they front.
// AccountRepo is exposed for the auth middleware.
type HandlerBundle struct {
	AccountRepo accountRepo.AccountRepository

	Accounts   account.AccountService
	Facilities facility.FacilityService
	Slots      timeslot.TimeSlotService
	Bookings   booking.BookingService
}
