package equity

// Handle is a shared, re-pointable reference to a market data object.
//
// All consumers of a handle see the same current target; relinking the
// handle to a new object notifies every registered observer. When the
// target is itself observable (a quote, typically), its own change
// notifications are forwarded through the handle.
//
// A handle is either empty or points to exactly one current object. The
// zero value (and EmptyHandle) is an empty handle; pricers validate
// emptiness at valuation time, not at construction time.
type Handle[T any] struct {
	signal
	target T
	linked bool
}

// NewHandle returns a handle pointing to the given target.
func NewHandle[T any](target T) *Handle[T] {
	h := &Handle[T]{}
	h.Link(target)
	return h
}

// EmptyHandle returns a handle pointing to nothing. It can be linked later;
// consumers registered before the link are notified.
func EmptyHandle[T any]() *Handle[T] { return &Handle[T]{} }

// Link re-points the handle to a new target and notifies every observer.
func (h *Handle[T]) Link(target T) {
	if obs, ok := any(h.target).(Observable); ok && h.linked {
		obs.Detach(h)
	}
	h.target, h.linked = target, true
	if obs, ok := any(target).(Observable); ok {
		obs.Attach(h)
	}
	h.notify()
}

// Target returns the current object. It is the zero value of T when the
// handle is empty.
func (h *Handle[T]) Target() T { return h.target }

// Empty reports whether the handle points to nothing.
func (h *Handle[T]) Empty() bool { return !h.linked }

// Update forwards the pointee's own change to the handle's observers.
func (h *Handle[T]) Update() { h.notify() }
