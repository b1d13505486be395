package promotion

import "errors"

var ErrInvalidPromoType = errors.New("invalid promotion type")

// Type is the closed set of promotion variants. Every consumer switches on it;
// adding a variant means touching each switch, which is the point.
type Type string

const (
	TypePurchaseCashback Type = "purchase_cashback"
	TypeTradeInBonus     Type = "trade_in_bonus"
)

func NewType(s string) (Type, error) {
	switch Type(s) {
	case TypePurchaseCashback, TypeTradeInBonus:
		return Type(s), nil
	default:
		return "", ErrInvalidPromoType
	}
}

func (t Type) String() string {
	return string(t)
}
