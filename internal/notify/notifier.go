package notify

import "log"

// Notifier delivers one push message to one recipient token.
type Notifier interface {
	Send(token, title, body string) error
}

const alertTitle = "Inventory Update"

// Dispatcher fans alerts out to every registered recipient: the full
// cross product of alerts × tokens, best effort, at most once. A failed
// delivery is logged and never blocks the remaining recipients.
type Dispatcher struct {
	notifier Notifier
}

func NewDispatcher(n Notifier) *Dispatcher {
	return &Dispatcher{notifier: n}
}

// Dispatch sends every alert to every token and returns the number of
// failed deliveries.
func (d *Dispatcher) Dispatch(alerts []string, tokens []string) int {
	failures := 0
	for _, alert := range alerts {
		for _, token := range tokens {
			if err := d.notifier.Send(token, alertTitle, alert); err != nil {
				log.Printf("notify: delivery to %s failed: %v", token, err)
				failures++
			}
		}
	}
	return failures
}
