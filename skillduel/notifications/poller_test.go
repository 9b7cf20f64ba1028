package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/skillduel/skillduel/skillduel/gateway"
	"github.com/skillduel/skillduel/skillduel/gateway/mock"
	"go.uber.org/mock/gomock"
)

// waitFor polls until cond holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestPoller_RefreshOnBroadcast(t *testing.T) {
	bus := NewBus()

	// Two independent regions, each with its own center and poller.
	polled := make([]chan struct{}, 2)
	centers := make([]*Center, 2)
	for i := range centers {
		calls := make(chan struct{}, 16)
		polled[i] = calls
		gw := mock.NewMockAPI(gomock.NewController(t))
		gw.EXPECT().
			UnreadCount(gomock.Any()).
			DoAndReturn(func(context.Context) (int, error) {
				calls <- struct{}{}
				return 2, nil
			}).
			MinTimes(2)
		centers[i] = NewCenter(gw)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{}, 2)
	for i := range centers {
		p := NewPoller(centers[i], bus, time.Hour)
		go func() {
			p.Run(ctx)
			done <- struct{}{}
		}()
	}

	// Both pollers refresh immediately on start.
	for i := range polled {
		select {
		case <-polled[i]:
		case <-time.After(2 * time.Second):
			t.Fatalf("poller %d never did its initial refresh", i)
		}
	}

	// One broadcast reaches every mounted poller.
	waitFor(t, func() bool { return bus.SubscriberCount() == 2 }, "pollers never subscribed")
	bus.Broadcast()
	for i := range polled {
		select {
		case <-polled[i]:
		case <-time.After(2 * time.Second):
			t.Fatalf("poller %d did not react to the broadcast", i)
		}
		if got := centers[i].Unread(); got != 2 {
			t.Errorf("center %d Unread() = %d, want 2", i, got)
		}
	}

	cancel()
	for range centers {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("poller did not stop on context cancel")
		}
	}
	waitFor(t, func() bool { return bus.SubscriberCount() == 0 }, "pollers did not release their subscriptions")
}

func TestPoller_RefreshListWhenOpen(t *testing.T) {
	bus := NewBus()
	gw := mock.NewMockAPI(gomock.NewController(t))

	listFetched := make(chan struct{}, 16)
	gw.EXPECT().UnreadCount(gomock.Any()).Return(1, nil).AnyTimes()
	gw.EXPECT().
		Notifications(gomock.Any(), gateway.DefaultNotificationLimit).
		DoAndReturn(func(context.Context, int) ([]gateway.Notification, error) {
			listFetched <- struct{}{}
			return []gateway.Notification{{ID: "n-1"}}, nil
		}).
		MinTimes(2)

	center := NewCenter(gw)
	center.Open(context.Background())
	<-listFetched

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go NewPoller(center, bus, time.Hour).Run(ctx)

	// An open list view re-fetches the list on the change signal.
	waitFor(t, func() bool { return bus.SubscriberCount() == 1 }, "poller never subscribed")
	bus.Broadcast()
	select {
	case <-listFetched:
	case <-time.After(2 * time.Second):
		t.Fatal("open center did not refresh its list on broadcast")
	}
}

func TestPoller_TickerInterval(t *testing.T) {
	bus := NewBus()
	gw := mock.NewMockAPI(gomock.NewController(t))

	calls := make(chan struct{}, 16)
	gw.EXPECT().
		UnreadCount(gomock.Any()).
		DoAndReturn(func(context.Context) (int, error) {
			calls <- struct{}{}
			return 0, nil
		}).
		MinTimes(3)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go NewPoller(NewCenter(gw), bus, 10*time.Millisecond).Run(ctx)

	for i := 0; i < 3; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatalf("only saw %d refreshes, want 3", i)
		}
	}
}
