// internal/event/event.go
package event

// EventType names a kind of event.
type EventType string

// Event is delivered synchronously to every listener of its type.
type Event struct {
	Type EventType
	Data any
}

// Listener receives events it subscribed to.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher fans events out to listeners in subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeFunc subscribes fn and returns a function that removes it again.
func (d *Dispatcher) SubscribeFunc(eventType EventType, fn func(Event)) (unsubscribe func()) {
	l := &funcListener{fn: fn}
	d.Subscribe(eventType, l)
	return func() { d.Unsubscribe(eventType, l) }
}

func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch delivers event to a snapshot of the current listeners, so
// listeners may subscribe or unsubscribe while handling it.
func (d *Dispatcher) Dispatch(event Event) {
	listeners := d.listeners[event.Type]
	if len(listeners) == 0 {
		return
	}
	snapshot := make([]Listener, len(listeners))
	copy(snapshot, listeners)
	for _, listener := range snapshot {
		listener.OnEvent(event)
	}
}

// funcListener gives a function listener a comparable identity.
type funcListener struct {
	fn func(Event)
}

func (l *funcListener) OnEvent(event Event) { l.fn(event) }
