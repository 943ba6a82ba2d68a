package equity

// Observer is notified when a market data object it depends on changes.
// Update must only flip state (typically a staleness flag), never recompute:
// real work happens lazily on the next read.
type Observer interface {
	Update()
}

// Observable is a source of change notifications. Market data objects and
// handles are observable; cash flows, pricers and indexes register with the
// objects they read from.
type Observable interface {
	Attach(o Observer)
	Detach(o Observer)
}

// signal is the concrete Observable embedded by market data objects.
// Back-references to observers are non-owning lookup links: detaching or
// dropping an observer never affects the observable's lifetime.
type signal struct {
	observers map[Observer]struct{}
}

func (s *signal) Attach(o Observer) {
	if s.observers == nil {
		s.observers = make(map[Observer]struct{})
	}
	s.observers[o] = struct{}{}
}

func (s *signal) Detach(o Observer) { delete(s.observers, o) }

// notify walks the dependent set and marks each one dirty.
func (s *signal) notify() {
	for o := range s.observers {
		o.Update()
	}
}
