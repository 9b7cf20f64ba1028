package flow

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/skillduel/skillduel/skillduel/challenges"
	"github.com/skillduel/skillduel/skillduel/gateway"
	"github.com/skillduel/skillduel/skillduel/gateway/mock"
	"github.com/skillduel/skillduel/skillduel/notifications"
	"github.com/skillduel/skillduel/skillduel/planstore"
	"github.com/skillduel/skillduel/skillduel/session"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	gw     *mock.MockAPI
	store  *planstore.Store
	engine *challenges.Engine
	center *notifications.Center
	bus    *notifications.Bus
	r      *Responder
}

func newFixture(t *testing.T) *fixture {
	gw := mock.NewMockAPI(gomock.NewController(t))
	store := planstore.NewStore()
	engine := challenges.NewEngine(gw, session.NewStaticProvider("user-1", "me", "token"), store)
	center := notifications.NewCenter(gw)
	bus := notifications.NewBus()
	return &fixture{
		gw:     gw,
		store:  store,
		engine: engine,
		center: center,
		bus:    bus,
		r:      NewResponder(gw, store, engine, center, bus),
	}
}

// syncBinding installs one active challenge binding through a real sync
// pass.
func (f *fixture) syncBinding(t *testing.T, challengeID, skill string) {
	t.Helper()
	f.gw.EXPECT().
		MyChallenges(gomock.Any(), gateway.StatusActive).
		Return([]gateway.ChallengeWithProgress{{
			Challenge: gateway.Challenge{
				ID:              challengeID,
				ChallengerID:    "user-1",
				OpponentID:      "user-2",
				ChallengerSkill: skill,
				Status:          gateway.StatusActive,
			},
			MyProgress: &gateway.ChallengeProgress{SkillName: skill},
		}}, nil)
	if err := f.engine.SyncChallenges(context.Background()); err != nil {
		t.Fatalf("SyncChallenges() error = %v", err)
	}
}

func TestResponder_GiveUp(t *testing.T) {
	tests := []struct {
		name       string
		gatewayErr error
		want       bool
	}{
		{name: "server acknowledges", gatewayErr: nil, want: true},
		{name: "server fails, local removal sticks", gatewayErr: errors.New("backend down"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.syncBinding(t, "ch-1", "Guitar")
			f.gw.EXPECT().GiveUpChallenge(gomock.Any(), "ch-1").Return(tt.gatewayErr)

			if got := f.r.GiveUp(context.Background(), "Guitar"); got != tt.want {
				t.Errorf("GiveUp() = %v, want %v", got, tt.want)
			}

			// The skill and its binding are gone either way.
			if got := f.store.Skills(); len(got) != 0 {
				t.Errorf("store skills = %v, want empty", got)
			}
			if _, ok := f.engine.BindingFor("Guitar"); ok {
				t.Error("binding survived give-up")
			}
		})
	}
}

func TestResponder_GiveUpUnboundSkill(t *testing.T) {
	f := newFixture(t)
	f.store.AddSkill("Painting")

	// No binding, so no gateway call at all.
	if got := f.r.GiveUp(context.Background(), "Painting"); !got {
		t.Error("GiveUp() = false for an unbound skill, want true")
	}
	if got := f.store.Skills(); len(got) != 0 {
		t.Errorf("store skills = %v, want empty", got)
	}
}

func TestResponder_RespondToFriendRequest(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.gw.EXPECT().FriendRequests(gomock.Any()).Return([]gateway.FriendRequest{
		{ID: "user-5", FriendshipID: "fr-1", Username: "sam"},
		{ID: "user-6", FriendshipID: "fr-2", Username: "kim"},
	}, nil)
	f.gw.EXPECT().RespondToRequest(gomock.Any(), "fr-1", true).Return(nil)
	f.gw.EXPECT().Notifications(gomock.Any(), gateway.LookupNotificationLimit).Return([]gateway.Notification{
		{ID: "n-1", Type: gateway.TypeFriendRequest, Data: gateway.NotificationData{RequesterID: "user-5"}},
	}, nil)
	f.gw.EXPECT().MarkAsRead(gomock.Any(), "n-1").Return(nil)

	signals, release := f.bus.Subscribe()
	defer release()

	if _, err := f.r.LoadPendingRequests(ctx); err != nil {
		t.Fatalf("LoadPendingRequests() error = %v", err)
	}
	if err := f.r.RespondToFriendRequest(ctx, "fr-1", true); err != nil {
		t.Fatalf("RespondToFriendRequest() error = %v", err)
	}

	want := []gateway.FriendRequest{{ID: "user-6", FriendshipID: "fr-2", Username: "kim"}}
	if got := f.r.PendingRequests(); !reflect.DeepEqual(got, want) {
		t.Errorf("PendingRequests() = %v, want %v", got, want)
	}
	select {
	case <-signals:
	default:
		t.Error("expected a change signal after responding")
	}
}

func TestResponder_RespondToFriendRequestFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.gw.EXPECT().FriendRequests(gomock.Any()).Return([]gateway.FriendRequest{
		{ID: "user-5", FriendshipID: "fr-1", Username: "sam"},
	}, nil)
	f.gw.EXPECT().RespondToRequest(gomock.Any(), "fr-1", false).Return(errors.New("backend down"))

	signals, release := f.bus.Subscribe()
	defer release()

	if _, err := f.r.LoadPendingRequests(ctx); err != nil {
		t.Fatalf("LoadPendingRequests() error = %v", err)
	}
	if err := f.r.RespondToFriendRequest(ctx, "fr-1", false); err == nil {
		t.Fatal("RespondToFriendRequest() expected error")
	}

	// A failed respond leaves the pending list and emits nothing.
	if got := f.r.PendingRequests(); len(got) != 1 {
		t.Errorf("PendingRequests() = %v, want the request kept", got)
	}
	select {
	case <-signals:
		t.Error("no signal should fire on failure")
	default:
	}
}

func TestResponder_ResolveNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("friend request accept", func(t *testing.T) {
		f := newFixture(t)
		n := gateway.Notification{
			ID:   "n-1",
			Type: gateway.TypeFriendRequest,
			Data: gateway.NotificationData{RequesterID: "user-5"},
		}

		f.gw.EXPECT().FriendRequests(gomock.Any()).Return([]gateway.FriendRequest{
			{ID: "user-5", FriendshipID: "fr-1"},
		}, nil)
		f.gw.EXPECT().RespondToRequest(gomock.Any(), "fr-1", true).Return(nil)
		f.gw.EXPECT().MarkAsRead(gomock.Any(), "n-1").Return(nil)

		signals, release := f.bus.Subscribe()
		defer release()

		if err := f.r.ResolveNotification(ctx, n, true); err != nil {
			t.Fatalf("ResolveNotification() error = %v", err)
		}

		if action, ok := f.center.ActionFor("n-1"); !ok || action != notifications.ActionAccepted {
			t.Errorf("ActionFor() = %q, %v, want accepted", action, ok)
		}
		select {
		case <-signals:
		default:
			t.Error("expected a change signal")
		}
	})

	t.Run("challenge decline", func(t *testing.T) {
		f := newFixture(t)
		n := gateway.Notification{
			ID:   "n-2",
			Type: gateway.TypeChallengeReceived,
			Data: gateway.NotificationData{ChallengeID: "ch-9"},
		}

		f.gw.EXPECT().RespondToChallenge(gomock.Any(), "ch-9", false).Return(nil)
		f.gw.EXPECT().MyChallenges(gomock.Any(), gateway.StatusActive).Return(nil, nil)
		f.gw.EXPECT().MarkAsRead(gomock.Any(), "n-2").Return(nil)

		if err := f.r.ResolveNotification(ctx, n, false); err != nil {
			t.Fatalf("ResolveNotification() error = %v", err)
		}
		if action, ok := f.center.ActionFor("n-2"); !ok || action != notifications.ActionDeclined {
			t.Errorf("ActionFor() = %q, %v, want declined", action, ok)
		}
	})

	t.Run("non-actionable type", func(t *testing.T) {
		f := newFixture(t)
		n := gateway.Notification{ID: "n-3", Type: gateway.TypeOpponentProgress}

		if err := f.r.ResolveNotification(ctx, n, true); err == nil {
			t.Fatal("ResolveNotification() expected error for non-actionable type")
		}
		if _, ok := f.center.ActionFor("n-3"); ok {
			t.Error("no action should be recorded on failure")
		}
	})

	t.Run("missing challenge id", func(t *testing.T) {
		f := newFixture(t)
		n := gateway.Notification{ID: "n-4", Type: gateway.TypeChallengeReceived}

		if err := f.r.ResolveNotification(ctx, n, true); err == nil {
			t.Fatal("ResolveNotification() expected error when the payload has no challenge id")
		}
	})
}

func TestResponder_GeneratePlan(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	plan := &planstore.Plan{SkillName: "Guitar", CurrentDay: 1}
	f.gw.EXPECT().GeneratePlan(gomock.Any(), "Guitar").Return(plan, nil)

	if err := f.r.GeneratePlan(ctx, "Guitar"); err != nil {
		t.Fatalf("GeneratePlan() error = %v", err)
	}
	if !f.store.HasPlan("Guitar") {
		t.Error("plan not installed in the store")
	}
	if got := f.store.ActiveSkill(); got != "Guitar" {
		t.Errorf("ActiveSkill() = %q, want Guitar", got)
	}
}

func TestResponder_GeneratePlanFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.gw.EXPECT().GeneratePlan(gomock.Any(), "Guitar").Return(nil, errors.New("generator unavailable"))

	if err := f.r.GeneratePlan(ctx, "Guitar"); err == nil {
		t.Fatal("GeneratePlan() expected error")
	}
	if len(f.store.Skills()) != 0 {
		t.Error("a failed generation must not add the skill")
	}
}

func TestResponder_CompleteCheckin(t *testing.T) {
	ctx := context.Background()

	newPlan := func() *planstore.Plan {
		days := make([]planstore.Day, planstore.PlanDays)
		for i := range days {
			days[i] = planstore.Day{Day: i + 1}
		}
		return &planstore.Plan{Days: days, CurrentDay: 1}
	}

	t.Run("mirrors to bound challenge", func(t *testing.T) {
		f := newFixture(t)
		f.syncBinding(t, "ch-1", "Guitar")
		f.store.SetPlanForSkill("Guitar", newPlan())
		f.gw.EXPECT().DailyCheckin(gomock.Any(), "ch-1", true, "went well").Return(nil)

		if err := f.r.CompleteCheckin(ctx, 0, planstore.FeedbackOkay, "went well"); err != nil {
			t.Fatalf("CompleteCheckin() error = %v", err)
		}

		plan := f.store.Plan("Guitar")
		if !plan.Days[0].Completed || plan.Days[0].Feedback != planstore.FeedbackOkay {
			t.Errorf("day 0 = %+v, want completed with okay feedback", plan.Days[0])
		}
		if plan.CurrentDay != 2 {
			t.Errorf("CurrentDay = %d, want 2", plan.CurrentDay)
		}
	})

	t.Run("server failure keeps local progress", func(t *testing.T) {
		f := newFixture(t)
		f.syncBinding(t, "ch-1", "Guitar")
		f.store.SetPlanForSkill("Guitar", newPlan())
		f.gw.EXPECT().DailyCheckin(gomock.Any(), "ch-1", true, "").Return(errors.New("backend down"))

		if err := f.r.CompleteCheckin(ctx, 0, planstore.FeedbackHard, ""); err == nil {
			t.Fatal("CompleteCheckin() expected error when the mirror fails")
		}

		plan := f.store.Plan("Guitar")
		if !plan.Days[0].Completed || plan.CurrentDay != 2 {
			t.Errorf("local progress rolled back: day=%+v currentDay=%d", plan.Days[0], plan.CurrentDay)
		}
	})

	t.Run("no binding skips the mirror", func(t *testing.T) {
		f := newFixture(t)
		f.store.AddSkill("Painting")
		f.store.SetPlanForSkill("Painting", newPlan())

		if err := f.r.CompleteCheckin(ctx, 0, planstore.FeedbackEasy, ""); err != nil {
			t.Fatalf("CompleteCheckin() error = %v", err)
		}
		if got := f.store.Plan("Painting").CurrentDay; got != 2 {
			t.Errorf("CurrentDay = %d, want 2", got)
		}
	})
}

func TestResponder_AcceptInviteLink(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.gw.EXPECT().AcceptInviteLink(gomock.Any(), "code-1").Return(&gateway.Challenge{ID: "ch-7"}, nil)
	f.gw.EXPECT().MyChallenges(gomock.Any(), gateway.StatusActive).Return(nil, nil)

	signals, release := f.bus.Subscribe()
	defer release()

	challenge, err := f.r.AcceptInviteLink(ctx, "code-1")
	if err != nil {
		t.Fatalf("AcceptInviteLink() error = %v", err)
	}
	if challenge.ID != "ch-7" {
		t.Errorf("challenge ID = %q, want ch-7", challenge.ID)
	}
	select {
	case <-signals:
	default:
		t.Error("expected a change signal after joining")
	}
}
