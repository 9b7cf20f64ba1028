package notifications

import "testing"

func TestBus_Broadcast(t *testing.T) {
	bus := NewBus()

	first, releaseFirst := bus.Subscribe()
	second, releaseSecond := bus.Subscribe()
	defer releaseFirst()
	defer releaseSecond()

	bus.Broadcast()

	for i, ch := range []<-chan Signal{first, second} {
		select {
		case <-ch:
		default:
			t.Errorf("subscriber %d did not receive the signal", i)
		}
	}
}

func TestBus_NoReplay(t *testing.T) {
	bus := NewBus()
	bus.Broadcast()

	late, release := bus.Subscribe()
	defer release()

	select {
	case <-late:
		t.Error("late subscriber must not see an earlier emission")
	default:
	}
}

func TestBus_Coalesce(t *testing.T) {
	bus := NewBus()
	ch, release := bus.Subscribe()
	defer release()

	bus.Broadcast()
	bus.Broadcast()
	bus.Broadcast()

	<-ch
	select {
	case <-ch:
		t.Error("undrained signals must coalesce into one")
	default:
	}
}

func TestBus_Release(t *testing.T) {
	bus := NewBus()
	_, releaseFirst := bus.Subscribe()
	_, releaseSecond := bus.Subscribe()

	if got := bus.SubscriberCount(); got != 2 {
		t.Fatalf("SubscriberCount() = %d, want 2", got)
	}
	releaseFirst()
	releaseSecond()
	if got := bus.SubscriberCount(); got != 0 {
		t.Errorf("SubscriberCount() = %d after release, want 0", got)
	}

	// Broadcasting with no subscribers is a no-op.
	bus.Broadcast()
}
