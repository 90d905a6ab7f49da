package core

// Notifier is a minimal Listenable. Listeners run synchronously, in the
// order they were added, on every Notify.
type Notifier struct {
	listeners map[int]func()
	order     []int
	nextID    int
}

// NewNotifier creates an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{listeners: make(map[int]func())}
}

// AddListener registers listener and returns a function that removes it.
// The returned function is idempotent.
func (n *Notifier) AddListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = listener
	n.order = append(n.order, id)
	return func() {
		if _, ok := n.listeners[id]; !ok {
			return
		}
		delete(n.listeners, id)
		for i, other := range n.order {
			if other == id {
				n.order = append(n.order[:i], n.order[i+1:]...)
				break
			}
		}
	}
}

// Notify calls every listener registered at the time of the call. Listeners
// added or removed by a listener take effect from the next Notify.
func (n *Notifier) Notify() {
	pending := make([]func(), 0, len(n.order))
	for _, id := range n.order {
		pending = append(pending, n.listeners[id])
	}
	for _, listener := range pending {
		listener()
	}
}

// ListenerCount returns the number of registered listeners.
func (n *Notifier) ListenerCount() int {
	return len(n.listeners)
}

// Clear removes every listener.
func (n *Notifier) Clear() {
	clear(n.listeners)
	n.order = nil
}
