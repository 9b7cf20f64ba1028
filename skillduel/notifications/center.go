package notifications

import (
	"context"
	"log/slog"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/skillduel/skillduel/skillduel/gateway"
	"github.com/skillduel/skillduel/skillduel/logger"
)

// Action is the local-only annotation for an actionable notification the
// user has resolved. It is independent of the server-tracked read flag.
type Action string

const (
	ActionAccepted Action = "accepted"
	ActionDeclined Action = "declined"
)

// Center holds one UI region's view of the notification state: the
// unread counter, the lazily-fetched list, and per-notification acted-on
// annotations. Mark-read operations are local-truth, server-best-effort:
// the local mutation always sticks, a failed server write is only
// logged.
type Center struct {
	gw gateway.API

	mu     sync.RWMutex
	list   []gateway.Notification
	unread int
	open   bool

	actedOn *xsync.MapOf[string, Action]
}

func NewCenter(gw gateway.API) *Center {
	return &Center{
		gw:      gw,
		actedOn: xsync.NewMapOf[string, Action](),
	}
}

// RefreshUnread re-polls the unread counter. Failures are swallowed and
// the previous value is retained for the next tick.
func (c *Center) RefreshUnread(ctx context.Context) {
	count, err := c.gw.UnreadCount(ctx)
	if err != nil {
		slog.Debug("Unread count poll failed",
			slog.String("type", "poll"),
			slog.Any("error", err))
		return
	}
	c.mu.Lock()
	c.unread = count
	c.mu.Unlock()
}

func (c *Center) Unread() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.unread
}

// Open marks the list view visible and fetches the most recent
// notifications, replacing the local list wholesale. On failure the
// previous list is kept.
func (c *Center) Open(ctx context.Context) []gateway.Notification {
	c.mu.Lock()
	c.open = true
	c.mu.Unlock()
	c.refreshList(ctx)
	return c.Notifications()
}

// Close marks the list view hidden; broadcast signals then only refresh
// the counter.
func (c *Center) Close() {
	c.mu.Lock()
	c.open = false
	c.mu.Unlock()
}

func (c *Center) IsOpen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.open
}

func (c *Center) refreshList(ctx context.Context) {
	notifications, err := c.gw.Notifications(ctx, gateway.DefaultNotificationLimit)
	if err != nil {
		slog.Debug("Notification list fetch failed",
			slog.String("type", "poll"),
			slog.Any("error", err))
		return
	}
	c.mu.Lock()
	c.list = notifications
	c.mu.Unlock()
}

func (c *Center) Notifications() []gateway.Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]gateway.Notification(nil), c.list...)
}

// MarkRead optimistically flips the local read flag and decrements the
// counter (clamped at zero) before the server write resolves. The server
// call is best-effort; its failure does not roll anything back.
func (c *Center) MarkRead(ctx context.Context, notificationID string) {
	c.mu.Lock()
	if c.unread > 0 {
		c.unread--
	}
	for i := range c.list {
		if c.list[i].ID == notificationID {
			c.list[i].Read = true
		}
	}
	c.mu.Unlock()

	if err := c.gw.MarkAsRead(ctx, notificationID); err != nil {
		logger.LogDivergence("mark_read", notificationID, err)
	}
}

// MarkAllRead zeroes the counter and flips every local flag, then tells
// the server best-effort.
func (c *Center) MarkAllRead(ctx context.Context) {
	c.mu.Lock()
	c.unread = 0
	for i := range c.list {
		c.list[i].Read = true
	}
	c.mu.Unlock()

	if err := c.gw.MarkAllAsRead(ctx); err != nil {
		logger.LogDivergence("mark_all_read", "*", err)
	}
}

// RecordAction stores the local acted-on annotation for an actionable
// notification. Terminal: a second action on the same id is ignored.
func (c *Center) RecordAction(notificationID string, action Action) {
	c.actedOn.LoadOrStore(notificationID, action)
}

// ActionFor returns the acted-on annotation, if the user has resolved
// this notification in this session.
func (c *Center) ActionFor(notificationID string) (Action, bool) {
	return c.actedOn.Load(notificationID)
}
