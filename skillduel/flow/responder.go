// Package flow implements the compound user actions that span the
// gateway, the plan store, the sync engine, and the notification bus.
package flow

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/skillduel/skillduel/skillduel/challenges"
	"github.com/skillduel/skillduel/skillduel/gateway"
	"github.com/skillduel/skillduel/skillduel/logger"
	"github.com/skillduel/skillduel/skillduel/notifications"
	"github.com/skillduel/skillduel/skillduel/planstore"
)

// Responder coordinates accept/decline/give-up actions. Each action
// calls the gateway first, applies the local consequences, marks the
// originating notification read, and broadcasts the change signal so
// every mounted poller re-checks.
type Responder struct {
	gw     gateway.API
	store  *planstore.Store
	engine *challenges.Engine
	center *notifications.Center
	bus    *notifications.Bus

	pendingMu sync.Mutex
	pending   []gateway.FriendRequest
}

func NewResponder(gw gateway.API, store *planstore.Store, engine *challenges.Engine, center *notifications.Center, bus *notifications.Bus) *Responder {
	return &Responder{
		gw:     gw,
		store:  store,
		engine: engine,
		center: center,
		bus:    bus,
	}
}

// LoadPendingRequests refreshes the locally-held pending friend request
// list. The 30s request poll and page loads both land here.
func (r *Responder) LoadPendingRequests(ctx context.Context) ([]gateway.FriendRequest, error) {
	requests, err := r.gw.FriendRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load friend requests: %w", err)
	}
	r.pendingMu.Lock()
	r.pending = requests
	r.pendingMu.Unlock()
	return append([]gateway.FriendRequest(nil), requests...), nil
}

func (r *Responder) PendingRequests() []gateway.FriendRequest {
	r.pendingMu.Lock()
	defer r.pendingMu.Unlock()
	return append([]gateway.FriendRequest(nil), r.pending...)
}

// RespondToFriendRequest accepts or declines a pending request. On
// success the request leaves the local pending list, the matching
// notification is marked read, and the change signal fires.
func (r *Responder) RespondToFriendRequest(ctx context.Context, friendshipID string, accept bool) error {
	if err := r.gw.RespondToRequest(ctx, friendshipID, accept); err != nil {
		return fmt.Errorf("failed to respond to friend request: %w", err)
	}

	requesterID := r.dropPending(friendshipID)
	if requesterID != "" {
		r.markFriendNotificationRead(ctx, requesterID)
	}
	r.bus.Broadcast()
	return nil
}

// RespondToChallenge accepts or declines an incoming challenge, then
// re-runs the sync engine because either decision changes the binding
// picture.
func (r *Responder) RespondToChallenge(ctx context.Context, challengeID string, accept bool) error {
	if err := r.gw.RespondToChallenge(ctx, challengeID, accept); err != nil {
		return fmt.Errorf("failed to respond to challenge: %w", err)
	}

	// Best-effort: a failed sync here is caught and logged by the engine.
	_ = r.engine.SyncChallenges(ctx)

	r.markChallengeNotificationRead(ctx, challengeID)
	r.bus.Broadcast()
	return nil
}

// ResolveNotification handles an inline accept/decline on an actionable
// notification and records the local acted-on annotation.
func (r *Responder) ResolveNotification(ctx context.Context, n gateway.Notification, accept bool) error {
	switch n.Type {
	case gateway.TypeFriendRequest:
		friendshipID, err := r.friendshipIDFor(ctx, n.Data.RequesterID)
		if err != nil {
			return err
		}
		if err := r.gw.RespondToRequest(ctx, friendshipID, accept); err != nil {
			return fmt.Errorf("failed to respond to friend request: %w", err)
		}
		r.dropPending(friendshipID)
	case gateway.TypeChallengeReceived:
		if n.Data.ChallengeID == "" {
			return fmt.Errorf("notification %s has no challenge id", n.ID)
		}
		if err := r.gw.RespondToChallenge(ctx, n.Data.ChallengeID, accept); err != nil {
			return fmt.Errorf("failed to respond to challenge: %w", err)
		}
		_ = r.engine.SyncChallenges(ctx)
	default:
		return fmt.Errorf("notification type %s is not actionable", n.Type)
	}

	if accept {
		r.center.RecordAction(n.ID, notifications.ActionAccepted)
	} else {
		r.center.RecordAction(n.ID, notifications.ActionDeclined)
	}
	r.center.MarkRead(ctx, n.ID)
	r.bus.Broadcast()
	return nil
}

// GiveUp abandons the challenge bound to a skill. The skill and its
// binding are removed locally no matter what the gateway reports; the
// return value tells the caller whether the server acknowledged it.
func (r *Responder) GiveUp(ctx context.Context, skill string) bool {
	ok := true
	if binding, bound := r.engine.BindingFor(skill); bound {
		if err := r.gw.GiveUpChallenge(ctx, binding.ChallengeID); err != nil {
			logger.LogDivergence("give_up", binding.ChallengeID, err)
			ok = false
		}
	}

	// Local removal is unconditional; the binding goes with the skill
	// via the store's remove hook.
	r.store.RemoveSkill(skill)
	return ok
}

// GeneratePlan asks the external generator for a fresh plan and installs
// it. User-initiated, so errors propagate for inline display.
func (r *Responder) GeneratePlan(ctx context.Context, skill string) error {
	plan, err := r.gw.GeneratePlan(ctx, skill)
	if err != nil {
		return fmt.Errorf("failed to generate plan for %s: %w", skill, err)
	}
	r.store.AddSkill(skill)
	r.store.SetPlanForSkill(skill, plan)
	return nil
}

// CompleteCheckin records the day's feedback locally, advances the plan,
// and mirrors the check-in to the bound challenge when one exists. The
// local advancement is the source of truth; a failed server check-in is
// reported but never undoes it.
func (r *Responder) CompleteCheckin(ctx context.Context, dayIndex int, feedback planstore.Feedback, notes string) error {
	skill := r.store.ActiveSkill()
	r.store.SubmitFeedback(dayIndex, feedback)
	r.store.CompleteDay()

	binding, bound := r.engine.BindingFor(skill)
	if !bound {
		return nil
	}
	if err := r.gw.DailyCheckin(ctx, binding.ChallengeID, true, notes); err != nil {
		logger.LogDivergence("daily_checkin", binding.ChallengeID, err)
		return fmt.Errorf("check-in saved locally but not on the server: %w", err)
	}
	return nil
}

// AcceptInviteLink joins a challenge through an invite code and pulls
// the new binding in.
func (r *Responder) AcceptInviteLink(ctx context.Context, code string) (*gateway.Challenge, error) {
	challenge, err := r.gw.AcceptInviteLink(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to accept invite link: %w", err)
	}
	_ = r.engine.SyncChallenges(ctx)
	r.bus.Broadcast()
	return challenge, nil
}

// dropPending removes a request from the local pending list and returns
// the requester's user id, if it was known.
func (r *Responder) dropPending(friendshipID string) string {
	r.pendingMu.Lock()
	defer r.pendingMu.Unlock()
	var requesterID string
	remaining := r.pending[:0]
	for _, req := range r.pending {
		if req.FriendshipID == friendshipID {
			requesterID = req.ID
			continue
		}
		remaining = append(remaining, req)
	}
	r.pending = remaining
	return requesterID
}

// friendshipIDFor resolves a requester user id to the friendship record
// needed by the respond endpoint.
func (r *Responder) friendshipIDFor(ctx context.Context, requesterID string) (string, error) {
	if requesterID == "" {
		return "", fmt.Errorf("notification has no requester id")
	}
	requests, err := r.gw.FriendRequests(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to look up friend requests: %w", err)
	}
	for _, req := range requests {
		if req.ID == requesterID {
			return req.FriendshipID, nil
		}
	}
	return "", fmt.Errorf("no pending request from user %s", requesterID)
}

// markChallengeNotificationRead finds the unread notification carrying
// this challenge and marks it read. Best-effort; the lookup fetch uses
// the wider limit so recent items are not missed.
func (r *Responder) markChallengeNotificationRead(ctx context.Context, challengeID string) {
	list, err := r.gw.Notifications(ctx, gateway.LookupNotificationLimit)
	if err != nil {
		slog.Debug("Notification lookup failed",
			slog.String("type", "api"),
			slog.Any("error", err))
		return
	}
	for _, n := range list {
		if n.Type == gateway.TypeChallengeReceived && n.Data.ChallengeID == challengeID && !n.Read {
			r.center.MarkRead(ctx, n.ID)
			return
		}
	}
}

func (r *Responder) markFriendNotificationRead(ctx context.Context, requesterID string) {
	list, err := r.gw.Notifications(ctx, gateway.LookupNotificationLimit)
	if err != nil {
		slog.Debug("Notification lookup failed",
			slog.String("type", "api"),
			slog.Any("error", err))
		return
	}
	for _, n := range list {
		if n.Type == gateway.TypeFriendRequest && n.Data.RequesterID == requesterID && !n.Read {
			r.center.MarkRead(ctx, n.ID)
			return
		}
	}
}
