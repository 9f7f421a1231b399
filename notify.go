package splinker

// Change identifies what a change notification is about.
type Change int

const (
	// PointsChanged is sent after the control points or the closed flag of a path
	// changed, including conversions to another editor.
	PointsChanged Change = iota + 1
	// GradientChanged is sent after a layer's gradient was replaced.
	GradientChanged
)

func (c Change) String() string {
	switch c {
	case PointsChanged:
		return "PointsChanged"
	case GradientChanged:
		return "GradientChanged"
	default:
		return "InvalidChange"
	}
}

type listener struct {
	id int
	fn func(Change)
}

// notifier keeps a list of change listeners. The zero value has no listeners.
type notifier struct {
	listeners []listener
	nextID    int
}

// Subscribe registers fn to be called after every change. Listeners are called
// synchronously, in the order they subscribed, once the model is consistent again.
// Calling the returned function unsubscribes fn.
func (n *notifier) Subscribe(fn func(Change)) (unsubscribe func()) {
	id := n.nextID
	n.nextID++
	n.listeners = append(n.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range n.listeners {
			if l.id == id {
				n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

func (n *notifier) notify(c Change) {
	// Unsubscribing never writes to the existing backing array, so listeners may
	// unsubscribe while being notified.
	for _, l := range n.listeners {
		l.fn(c)
	}
}
