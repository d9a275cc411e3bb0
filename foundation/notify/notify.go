// Package notify broadcasts values to a set of registered channels. The
// editor uses it to announce collection changes without coupling the core to
// any UI observation mechanism.
package notify

import (
	"sync"
)

// Notifier maintains the set of channels that receive broadcast values.
type Notifier[T any] struct {
	mu    sync.RWMutex
	chans []chan T
}

// New constructs a Notifier for use across G boundaries.
func New[T any]() *Notifier[T] {
	return &Notifier[T]{}
}

// Register returns a channel that receives every subsequent broadcast. The
// buffer size bounds how many broadcasts a slow receiver may fall behind
// before further values are dropped for that receiver.
func (n *Notifier[T]) Register(buffer int) <-chan T {
	n.mu.Lock()
	defer n.mu.Unlock()

	chn := make(chan T, buffer)
	n.chans = append(n.chans, chn)

	return chn
}

// Broadcast delivers the specified value to every registered channel. A
// receiver whose buffer is full misses the value rather than blocking the
// broadcaster.
func (n *Notifier[T]) Broadcast(t T) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, chn := range n.chans {
		select {
		case chn <- t:
		default:
		}
	}
}

// Shutdown closes every registered channel and forgets them.
func (n *Notifier[T]) Shutdown() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, chn := range n.chans {
		close(chn)
	}

	n.chans = nil
}
