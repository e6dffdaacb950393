package models

import "github.com/shopspring/decimal"

// Restaurant table bookings and hotel room reservations are separate
// backend models with slightly different fields.

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingSeated    = "seated"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

var BookingStatuses = []string{BookingPending, BookingConfirmed, BookingSeated, BookingCompleted, BookingCancelled}

func IsBookingStatus(s string) bool { return contains(BookingStatuses, s) }

type TableBooking struct {
	ID              string          `json:"_id,omitempty"`
	GuestName       string          `json:"guestName"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email,omitempty"`
	Date            string          `json:"date"`
	Time            string          `json:"time,omitempty"`
	Guests          int             `json:"guests"`
	TableType       string          `json:"tableType,omitempty"`
	TableNo         string          `json:"tableNo,omitempty"`
	Status          string          `json:"status,omitempty"`
	AdvanceAmount   decimal.Decimal `json:"advanceAmount"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
}

const (
	ReservationBooked     = "booked"
	ReservationCheckedIn  = "checked-in"
	ReservationCheckedOut = "checked-out"
	ReservationCancelled  = "cancelled"
)

var ReservationStatuses = []string{ReservationBooked, ReservationCheckedIn, ReservationCheckedOut, ReservationCancelled}

func IsReservationStatus(s string) bool { return contains(ReservationStatuses, s) }

type Reservation struct {
	ID            string          `json:"_id,omitempty"`
	GRCNo         string          `json:"grcNo,omitempty"`
	GuestName     string          `json:"guestName"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email,omitempty"`
	CheckInDate   string          `json:"checkInDate"`
	CheckOutDate  string          `json:"checkOutDate"`
	RoomType      string          `json:"roomType,omitempty"`
	RoomNumber    string          `json:"roomNumber,omitempty"`
	Guests        int             `json:"guests"`
	Status        string          `json:"status,omitempty"`
	AdvanceAmount decimal.Decimal `json:"advanceAmount"`
	Rate          decimal.Decimal `json:"rate"`
}

type Room struct {
	ID         string          `json:"_id,omitempty"`
	RoomNumber string          `json:"roomNumber"`
	RoomType   string          `json:"roomType,omitempty"`
	Category   CategoryRef     `json:"category"`
	Price      decimal.Decimal `json:"price"`
	Status     string          `json:"status,omitempty"`
}
