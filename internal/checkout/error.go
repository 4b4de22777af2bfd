package checkout

import "errors"

var (
	ErrPaymentDeclined        = errors.New("payment declined")
	ErrDeliveryMethodRequired = errors.New("delivery method must be selected before placing the order")
)

// RedirectError reports a step entry guard violation and names the step the
// caller should return to.
type RedirectError struct {
	Target Step
}

func (e *RedirectError) Error() string {
	return "redirect to " + string(e.Target)
}
