package notifications

import (
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
)

// Signal is the payload-less "notifications changed" event. Anything
// that completes a server action affecting notifications broadcasts it;
// mounted pollers react by re-polling. Emitters never learn who listens.
type Signal struct{}

// Bus fans Signal out to all current subscribers. There is no queue and
// no replay: a subscriber registered after an emission does not see it,
// and a subscriber that has not drained its previous signal sees the new
// one coalesced into it.
type Bus struct {
	subs   *xsync.MapOf[int64, chan Signal]
	nextID atomic.Int64
}

func NewBus() *Bus {
	return &Bus{
		subs: xsync.NewMapOf[int64, chan Signal](),
	}
}

// Subscribe returns a signal channel and a release func. The channel has
// a one-slot buffer so broadcasters never block.
func (b *Bus) Subscribe() (<-chan Signal, func()) {
	id := b.nextID.Add(1)
	ch := make(chan Signal, 1)
	b.subs.Store(id, ch)
	return ch, func() {
		b.subs.Delete(id)
	}
}

// Broadcast emits the change signal to every current subscriber.
func (b *Bus) Broadcast() {
	b.subs.Range(func(_ int64, ch chan Signal) bool {
		select {
		case ch <- Signal{}:
		default:
		}
		return true
	})
}

// SubscriberCount is used by lifecycle checks in tests.
func (b *Bus) SubscriberCount() int {
	return b.subs.Size()
}
