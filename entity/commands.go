package entity

// ReserveSeats is consumed by the seat booking service.
type ReserveSeats struct {
	Header               EventHeader `json:"header"`
	AccountID            int64       `json:"account_id"`
	TotalSeatsToAllocate int         `json:"total_seats_to_allocate"`
}

// MakePayment is consumed by the payment gateway.
type MakePayment struct {
	Header           EventHeader `json:"header"`
	AccountID        int64       `json:"account_id"`
	TotalAmountToPay int         `json:"total_amount_to_pay"`
}
