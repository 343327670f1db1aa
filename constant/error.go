package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrInvalidOrderTransition
	ErrTaskAlreadyCompleted
	ErrInsufficientStock
	ErrDuplicateMovement
	ErrWarehouseHasStock
	ErrReceiptAlreadyReceived
	ErrCustomerExists
	ErrProductExists
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                "success",
	ErrInternal:               "error internal",
	ErrNotFound:               "data not found",
	ErrInvalidRequest:         "invalid request",
	ErrUnauthorize:            "unauthorize request",
	ErrForbidden:              "forbidden request",
	ErrInvalidOrderTransition: "order status transition not allowed",
	ErrTaskAlreadyCompleted:   "putaway task already completed",
	ErrInsufficientStock:      "insufficient stock",
	ErrDuplicateMovement:      "duplicate movement for idempotency key",
	ErrWarehouseHasStock:      "warehouse still holds stock",
	ErrReceiptAlreadyReceived: "inbound receipt already received",
	ErrCustomerExists:         "customer name or email already exists",
	ErrProductExists:          "sku already exists for customer",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                http.StatusOK,
	ErrInternal:               http.StatusInternalServerError,
	ErrNotFound:               http.StatusNotFound,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrUnauthorize:            http.StatusUnauthorized,
	ErrForbidden:              http.StatusForbidden,
	ErrInvalidOrderTransition: http.StatusConflict,
	ErrTaskAlreadyCompleted:   http.StatusConflict,
	ErrInsufficientStock:      http.StatusConflict,
	ErrDuplicateMovement:      http.StatusConflict,
	ErrWarehouseHasStock:      http.StatusConflict,
	ErrReceiptAlreadyReceived: http.StatusConflict,
	ErrCustomerExists:         http.StatusConflict,
	ErrProductExists:          http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                "0000",
	ErrInternal:               "0001",
	ErrNotFound:               "0002",
	ErrInvalidRequest:         "0003",
	ErrUnauthorize:            "0004",
	ErrForbidden:              "0005",
	ErrInvalidOrderTransition: "0006",
	ErrTaskAlreadyCompleted:   "0007",
	ErrInsufficientStock:      "0008",
	ErrDuplicateMovement:      "0009",
	ErrWarehouseHasStock:      "0010",
	ErrReceiptAlreadyReceived: "0011",
	ErrCustomerExists:         "0012",
	ErrProductExists:          "0013",
}
