package skillduel

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/skillduel/skillduel/skillduel/archive"
	"github.com/skillduel/skillduel/skillduel/challenges"
	"github.com/skillduel/skillduel/skillduel/database"
	"github.com/skillduel/skillduel/skillduel/database/models"
	"github.com/skillduel/skillduel/skillduel/database/repositories"
	"github.com/skillduel/skillduel/skillduel/flow"
	"github.com/skillduel/skillduel/skillduel/gateway"
	"github.com/skillduel/skillduel/skillduel/notifications"
	"github.com/skillduel/skillduel/skillduel/planstore"
	"github.com/skillduel/skillduel/skillduel/session"
	"github.com/skillduel/skillduel/skillduel/utils"
	"golang.org/x/sync/errgroup"
)

// App wires the client core together: the gateway, the plan store, the
// challenge sync engine, the notification subsystem, and the response
// flows, plus the optional snapshot persistence and plan archive.
type App struct {
	Cfg       Config
	Gateway   gateway.API
	Sessions  session.Provider
	Store     *planstore.Store
	Engine    *challenges.Engine
	Bus       *notifications.Bus
	Center    *notifications.Center
	Responder *flow.Responder
	Scheduler *utils.Scheduler

	DB        *database.DB
	Snapshots repositories.PlanSnapshotRepository
	Archive   *archive.Service

	archiveMu sync.Mutex
	archived  map[string]bool
}

func New(cfg Config, sessions session.Provider) *App {
	gw := gateway.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.Timeout)*time.Second, sessions)
	store := planstore.NewStore()
	engine := challenges.NewEngine(gw, sessions, store)
	bus := notifications.NewBus()
	center := notifications.NewCenter(gw)

	return &App{
		Cfg:       cfg,
		Gateway:   gw,
		Sessions:  sessions,
		Store:     store,
		Engine:    engine,
		Bus:       bus,
		Center:    center,
		Responder: flow.NewResponder(gw, store, engine, center, bus),
		Scheduler: utils.NewScheduler(),
		archived:  make(map[string]bool),
	}
}

// Start brings up the background side: the session watcher, the unread
// poller, the pending-request poll, and snapshot persistence. Foreground
// operations go through Responder and the stores directly.
func (a *App) Start(ctx context.Context) {
	// First sync as soon as a session is available.
	if _, err := a.Sessions.Session(ctx); err == nil {
		a.onSignedIn(ctx)
	}

	a.Scheduler.Start("session-watcher", func(ctx context.Context) {
		states := a.Sessions.States()
		if states == nil {
			<-ctx.Done()
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case state, ok := <-states:
				if !ok {
					return
				}
				switch state {
				case session.SignedIn:
					a.onSignedIn(ctx)
				case session.SignedOut:
					a.onSignedOut()
				}
			}
		}
	})

	poller := notifications.NewPoller(a.Center, a.Bus, a.Cfg.UnreadInterval())
	a.Scheduler.Start("notifications-unread", poller.Run)

	a.Scheduler.Every("pending-requests", a.Cfg.RequestInterval(), func(ctx context.Context) {
		if _, err := a.Responder.LoadPendingRequests(ctx); err != nil {
			slog.Debug("Pending request poll failed",
				slog.String("type", "poll"),
				slog.Any("error", err))
		}
	})

	if a.Snapshots != nil {
		a.Scheduler.Start("plan-persist", a.runPlanPersistence)
	}
}

func (a *App) onSignedIn(ctx context.Context) {
	if a.Snapshots != nil {
		a.restoreSnapshots(ctx)
	}
	// Failure policy lives in the engine: it logs and marks itself
	// synced either way.
	_ = a.Engine.SyncChallenges(ctx)
}

func (a *App) onSignedOut() {
	a.Store.Reset()
	a.Engine.Reset()
}

// Shutdown stops the background tasks and closes the snapshot database.
func (a *App) Shutdown(timeout time.Duration) {
	if err := a.Scheduler.Shutdown(timeout); err != nil {
		slog.Warn("Scheduler shutdown timed out", slog.Any("error", err))
	}
	if a.DB != nil {
		a.DB.Close()
	}
}

// ProfileOverview is the profile page's one-shot load.
type ProfileOverview struct {
	Profile    *gateway.Profile
	Challenges []gateway.ChallengeWithProgress
	Friends    []gateway.UserSummary

	Wins      int
	Losses    int
	Active    int
	Completed int
}

// LoadProfile fetches profile, challenges, and friends in parallel,
// derives the win/loss stats, and triggers a challenge sync, mirroring
// what the profile surface needs in one round.
func (a *App) LoadProfile(ctx context.Context) (*ProfileOverview, error) {
	var overview ProfileOverview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile, err := a.Gateway.MyProfile(gctx)
		overview.Profile = profile
		return err
	})
	g.Go(func() error {
		challengeList, err := a.Gateway.MyChallenges(gctx, "")
		overview.Challenges = challengeList
		return err
	})
	g.Go(func() error {
		friends, err := a.Gateway.MyFriends(gctx)
		overview.Friends = friends
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, cw := range overview.Challenges {
		switch cw.Challenge.Status {
		case gateway.StatusActive:
			overview.Active++
		case gateway.StatusCompleted:
			overview.Completed++
			if cw.Challenge.WinnerID == "" {
				continue
			}
			if cw.Challenge.WinnerID == overview.Profile.ID {
				overview.Wins++
			} else {
				overview.Losses++
			}
		}
	}

	_ = a.Engine.SyncChallenges(ctx)
	return &overview, nil
}

// runPlanPersistence writes plan snapshots on every store change and
// archives plans that just finished.
func (a *App) runPlanPersistence(ctx context.Context) {
	changes, release := a.Store.Subscribe()
	defer release()

	for {
		select {
		case <-ctx.Done():
			return
		case <-changes:
			a.persistPlans(ctx)
		}
	}
}

func (a *App) persistPlans(ctx context.Context) {
	sess, err := a.Sessions.Session(ctx)
	if err != nil {
		return
	}

	for skill, plan := range a.Store.AllPlans() {
		snapshot := &models.PlanSnapshot{
			UserID:    sess.UserID,
			SkillName: skill,
			Plan:      plan,
		}
		if err := a.Snapshots.Upsert(ctx, snapshot); err != nil {
			slog.Error("Failed to persist plan snapshot",
				slog.String("type", "store"),
				slog.String("skill", skill),
				slog.Any("error", err))
			continue
		}
		a.maybeArchive(ctx, sess.UserID, plan)
	}
}

func (a *App) maybeArchive(ctx context.Context, userID string, plan *planstore.Plan) {
	if a.Archive == nil || !plan.Finished() {
		return
	}

	a.archiveMu.Lock()
	done := a.archived[plan.SkillName]
	if !done {
		a.archived[plan.SkillName] = true
	}
	a.archiveMu.Unlock()
	if done {
		return
	}

	if err := a.Archive.ArchivePlan(ctx, userID, plan); err != nil {
		slog.Warn("Plan archive upload failed",
			slog.String("type", "store"),
			slog.String("skill", plan.SkillName),
			slog.Any("error", err))
	}
}

func (a *App) restoreSnapshots(ctx context.Context) {
	sess, err := a.Sessions.Session(ctx)
	if err != nil {
		return
	}

	snapshots, err := a.Snapshots.GetAllByUserID(ctx, sess.UserID)
	if err != nil {
		slog.Error("Failed to restore plan snapshots",
			slog.String("type", "store"),
			slog.Any("error", err))
		return
	}
	for _, snapshot := range snapshots {
		a.Store.AddSkill(snapshot.SkillName)
		a.Store.SetPlanForSkill(snapshot.SkillName, snapshot.Plan)
	}
	if len(snapshots) > 0 {
		slog.Info("Restored plan snapshots",
			slog.String("type", "store"),
			slog.Int("count", len(snapshots)))
	}
}
