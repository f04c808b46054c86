package entity

import "errors"

// ErrInvalidPurchase is the only error a purchase is rejected with. Callers match it
// with errors.Is, the wrapped message carries the broken rule.
var ErrInvalidPurchase = errors.New("invalid purchase")
