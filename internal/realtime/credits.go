package realtime

// CreditEvent is one update to a user's credit balance as delivered by
// the user_credits subscription. Balance is the full new value, not a
// delta: the reducer is last-write-wins in delivery order.
type CreditEvent struct {
	UserID  string
	Balance int64
}

// ReduceCredits folds credit events over an initial balance in
// delivery order. With full-balance events the fold degenerates to
// "last event wins", which makes the ordering guarantee explicit and
// testable.
func ReduceCredits(initial int64, events []CreditEvent) int64 {
	balance := initial
	for _, e := range events {
		balance = e.Balance
	}
	return balance
}

// CreditEventFrom extracts a CreditEvent from a user_credits row
// change. It returns false when the payload has no usable balance.
func CreditEventFrom(e Event) (CreditEvent, bool) {
	if e.Table != "user_credits" {
		return CreditEvent{}, false
	}

	userID, _ := e.Payload["user_id"].(string)

	switch v := e.Payload["balance"].(type) {
	case int64:
		return CreditEvent{UserID: userID, Balance: v}, true
	case int:
		return CreditEvent{UserID: userID, Balance: int64(v)}, true
	case float64:
		return CreditEvent{UserID: userID, Balance: int64(v)}, true
	default:
		return CreditEvent{}, false
	}
}
