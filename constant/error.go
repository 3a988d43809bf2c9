package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInsufficientStock
	ErrInsufficientAllocation
	ErrInvalidOrderStatus
	ErrReservationNotActive
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                "success",
	ErrInternal:               "error internal",
	ErrNotFound:               "data not found",
	ErrInvalidRequest:         "invalid request",
	ErrUnauthorize:            "unauthorize request",
	ErrInsufficientStock:      "insufficient stock available",
	ErrInsufficientAllocation: "allocated quantity lower than release quantity",
	ErrInvalidOrderStatus:     "order status does not allow this operation",
	ErrReservationNotActive:   "reservation is not active",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                http.StatusOK,
	ErrInternal:               http.StatusInternalServerError,
	ErrNotFound:               http.StatusBadRequest,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrUnauthorize:            http.StatusUnauthorized,
	ErrInsufficientStock:      http.StatusConflict,
	ErrInsufficientAllocation: http.StatusConflict,
	ErrInvalidOrderStatus:     http.StatusConflict,
	ErrReservationNotActive:   http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                "0000",
	ErrInternal:               "0001",
	ErrNotFound:               "0002",
	ErrInvalidRequest:         "0003",
	ErrUnauthorize:            "0004",
	ErrInsufficientStock:      "0005",
	ErrInsufficientAllocation: "0006",
	ErrInvalidOrderStatus:     "0007",
	ErrReservationNotActive:   "0008",
}
