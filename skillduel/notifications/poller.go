package notifications

import (
	"context"
	"time"
)

// Poller drives one mounted UI region's notification state: it refreshes
// the unread counter on a fixed interval and re-polls whenever the
// change signal is broadcast. It stops cleanly when its context is
// cancelled, which is how the owning region releases it on teardown.
type Poller struct {
	center   *Center
	bus      *Bus
	interval time.Duration
}

func NewPoller(center *Center, bus *Bus, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &Poller{
		center:   center,
		bus:      bus,
		interval: interval,
	}
}

// Run polls until ctx is cancelled. An immediate refresh happens on
// start so the badge is never blank for a full interval.
func (p *Poller) Run(ctx context.Context) {
	signals, release := p.bus.Subscribe()
	defer release()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.center.RefreshUnread(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.center.RefreshUnread(ctx)
		case <-signals:
			p.center.RefreshUnread(ctx)
			if p.center.IsOpen() {
				p.center.refreshList(ctx)
			}
		}
	}
}
