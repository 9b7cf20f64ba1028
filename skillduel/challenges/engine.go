// Package challenges reconciles the server-authoritative challenge
// records with the locally-held skill and plan state.
package challenges

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skillduel/skillduel/skillduel/gateway"
	"github.com/skillduel/skillduel/skillduel/logger"
	"github.com/skillduel/skillduel/skillduel/planstore"
	"github.com/skillduel/skillduel/skillduel/session"
)

// placeholderOpponent is shown while the opponent's profile has not been
// populated on the challenge record.
const placeholderOpponent = "opponent"

// Binding associates a skill name with the active challenge it is staked
// on. At most one binding exists per skill name.
type Binding struct {
	ChallengeID         string
	OpponentID          string
	OpponentUsername    string
	OpponentDisplayName string
}

// Engine pulls the set of active challenges, derives the per-skill
// opponent binding, and merges challenge-derived skill names into the
// plan store. Bindings are replaced wholesale on every run; a failed run
// leaves them untouched.
type Engine struct {
	gw       gateway.API
	sessions session.Provider
	store    *planstore.Store

	mu       sync.RWMutex
	bindings map[string]Binding
	synced   atomic.Bool
}

func NewEngine(gw gateway.API, sessions session.Provider, store *planstore.Store) *Engine {
	e := &Engine{
		gw:       gw,
		sessions: sessions,
		store:    store,
		bindings: make(map[string]Binding),
	}
	store.OnRemove(e.RemoveBinding)
	return e
}

// SyncChallenges runs one reconciliation pass. On fetch failure the
// engine still flips its synced flag so dependent consumers never wait
// forever; the stale bindings remain and no retry is scheduled.
func (e *Engine) SyncChallenges(ctx context.Context) error {
	start := time.Now()

	active, err := e.gw.MyChallenges(ctx, gateway.StatusActive)
	if err != nil {
		e.synced.Store(true)
		logger.LogSync(e.BindingCount(), time.Since(start), err)
		return err
	}

	var selfID string
	if sess, sessErr := e.sessions.Session(ctx); sessErr == nil {
		selfID = sess.UserID
	}

	next := make(map[string]Binding, len(active))
	for _, cw := range active {
		skill := skillNameFor(cw, selfID)
		if skill == "" {
			continue
		}
		next[skill] = opponentBinding(cw, selfID)
	}

	for skill := range next {
		e.store.AddSkill(skill)
	}

	e.mu.Lock()
	e.bindings = next
	e.mu.Unlock()
	e.synced.Store(true)

	logger.LogSync(len(next), time.Since(start), nil)
	return nil
}

// skillNameFor resolves which skill the caller is working in this
// challenge, preferring the caller's own progress record.
func skillNameFor(cw gateway.ChallengeWithProgress, selfID string) string {
	if cw.MyProgress != nil && cw.MyProgress.SkillName != "" {
		return cw.MyProgress.SkillName
	}
	if selfID != "" && cw.Challenge.OpponentID == selfID {
		return cw.Challenge.OpponentSkill
	}
	return cw.Challenge.ChallengerSkill
}

// opponentBinding derives the opponent side: whichever participant is
// not the caller. Without identity the challenger side is assumed to be
// the caller, matching the server's population of my_progress.
func opponentBinding(cw gateway.ChallengeWithProgress, selfID string) Binding {
	b := Binding{ChallengeID: cw.Challenge.ID, OpponentUsername: placeholderOpponent}

	var summary *gateway.UserSummary
	if selfID != "" && cw.Challenge.OpponentID == selfID {
		b.OpponentID = cw.Challenge.ChallengerID
		summary = cw.Challenge.Challenger
	} else {
		b.OpponentID = cw.Challenge.OpponentID
		summary = cw.Challenge.Opponent
	}

	if summary != nil {
		if summary.Username != "" {
			b.OpponentUsername = summary.Username
		}
		b.OpponentDisplayName = summary.DisplayName
	}
	return b
}

// BindingFor returns the challenge binding for a skill, if any.
func (e *Engine) BindingFor(skill string) (Binding, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	b, ok := e.bindings[skill]
	return b, ok
}

// Bindings returns a copy of the current binding map.
func (e *Engine) Bindings() map[string]Binding {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make(map[string]Binding, len(e.bindings))
	for skill, b := range e.bindings {
		out[skill] = b
	}
	return out
}

func (e *Engine) BindingCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.bindings)
}

// RemoveBinding drops the binding for one skill. Called when the skill
// leaves the store or its challenge leaves the active state.
func (e *Engine) RemoveBinding(skill string) {
	e.mu.Lock()
	delete(e.bindings, skill)
	e.mu.Unlock()
}

// Synced reports whether at least one sync attempt has finished.
func (e *Engine) Synced() bool {
	return e.synced.Load()
}

// Reset clears bindings and the synced flag at session end.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.bindings = make(map[string]Binding)
	e.mu.Unlock()
	e.synced.Store(false)
}
