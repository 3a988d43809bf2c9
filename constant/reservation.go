package constant

import "time"

type ReservationStatus int

const (
	ReservationStatusActive   ReservationStatus = 1
	ReservationStatusReleased ReservationStatus = 2
	ReservationStatusExpired  ReservationStatus = 3
)

func (s ReservationStatus) String() string {
	switch s {
	case ReservationStatusActive:
		return "ACTIVE"
	case ReservationStatusReleased:
		return "RELEASED"
	case ReservationStatusExpired:
		return "EXPIRED"
	}
	return "UNKNOWN"
}

// DefaultReservationTTL is how long a reservation holds its claim on
// allocated stock before the sweeper reclaims it.
const DefaultReservationTTL = 48 * time.Hour
