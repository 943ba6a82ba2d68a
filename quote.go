package equity

// Quote is a single observable market value: a spot level, a correlation, a
// price.
type Quote interface {
	Observable
	Value() float64
}

// SimpleQuote is a settable Quote. Setting a new value notifies every
// dependent, directly registered or reached through a handle.
type SimpleQuote struct {
	signal
	value float64
}

// NewSimpleQuote returns a quote holding the given value.
func NewSimpleQuote(value float64) *SimpleQuote { return &SimpleQuote{value: value} }

// Value returns the current quoted value.
func (q *SimpleQuote) Value() float64 { return q.value }

// SetValue updates the quote. Dependents are notified only on an actual
// change.
func (q *SimpleQuote) SetValue(value float64) {
	if value == q.value {
		return
	}
	q.value = value
	q.notify()
}
