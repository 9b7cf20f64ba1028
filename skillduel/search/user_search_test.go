package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skillduel/skillduel/skillduel/gateway"
	"github.com/skillduel/skillduel/skillduel/gateway/mock"
	"go.uber.org/mock/gomock"
)

func TestUserSearcher_Debounce(t *testing.T) {
	ctx := context.Background()
	gw := mock.NewMockAPI(gomock.NewController(t))

	// Only the final query survives the debounce window.
	gw.EXPECT().MyFriends(gomock.Any()).Return(nil, nil)
	gw.EXPECT().SearchUsers(gomock.Any(), "alexa").Return([]gateway.UserSummary{
		{ID: "user-2", Username: "alexa"},
	}, nil)

	results := make(chan []gateway.UserSummary, 4)
	s := NewUserSearcher(gw, 30*time.Millisecond, func(r []gateway.UserSummary) {
		results <- r
	})
	if err := s.LoadFriends(ctx); err != nil {
		t.Fatalf("LoadFriends() error = %v", err)
	}

	s.Query(ctx, "a")
	s.Query(ctx, "al")
	s.Query(ctx, "alexa")

	select {
	case got := <-results:
		if len(got) != 1 || got[0].Username != "alexa" {
			t.Errorf("results = %v, want [alexa]", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no results delivered")
	}

	select {
	case got := <-results:
		t.Errorf("superseded query still delivered %v", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUserSearcher_Cancel(t *testing.T) {
	ctx := context.Background()
	gw := mock.NewMockAPI(gomock.NewController(t))

	results := make(chan []gateway.UserSummary, 1)
	s := NewUserSearcher(gw, 20*time.Millisecond, func(r []gateway.UserSummary) {
		results <- r
	})

	s.Query(ctx, "alex")
	s.Cancel()

	select {
	case <-results:
		t.Error("cancelled query still delivered")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUserSearcher_EmptyQuery(t *testing.T) {
	ctx := context.Background()
	gw := mock.NewMockAPI(gomock.NewController(t))

	results := make(chan []gateway.UserSummary, 1)
	s := NewUserSearcher(gw, 20*time.Millisecond, func(r []gateway.UserSummary) {
		results <- r
	})

	s.Query(ctx, "alex")
	s.Query(ctx, "   ")

	select {
	case <-results:
		t.Error("blank query must cancel the pending one and deliver nothing")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUserSearcher_MergesFriendsAndRemote(t *testing.T) {
	ctx := context.Background()
	gw := mock.NewMockAPI(gomock.NewController(t))

	friends := []gateway.UserSummary{
		{ID: "user-2", Username: "alexa", DisplayName: "Alexa"},
		{ID: "user-3", Username: "sam", DisplayName: "Sam"},
	}
	gw.EXPECT().MyFriends(gomock.Any()).Return(friends, nil)
	gw.EXPECT().SearchUsers(gomock.Any(), "alex").Return([]gateway.UserSummary{
		{ID: "user-2", Username: "alexa"}, // duplicate of the friend
		{ID: "user-9", Username: "alexander"},
	}, nil)

	results := make(chan []gateway.UserSummary, 1)
	s := NewUserSearcher(gw, time.Millisecond, func(r []gateway.UserSummary) {
		results <- r
	})
	if err := s.LoadFriends(ctx); err != nil {
		t.Fatalf("LoadFriends() error = %v", err)
	}

	s.Query(ctx, "alex")

	select {
	case got := <-results:
		if len(got) != 2 {
			t.Fatalf("results = %v, want matched friend plus remote user", got)
		}
		if got[0].ID != "user-2" {
			t.Errorf("first result = %v, want the fuzzy-matched friend first", got[0])
		}
		if got[1].ID != "user-9" {
			t.Errorf("second result = %v, want the remote-only user", got[1])
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no results delivered")
	}
}

func TestUserSearcher_RemoteFailureKeepsLocal(t *testing.T) {
	ctx := context.Background()
	gw := mock.NewMockAPI(gomock.NewController(t))

	gw.EXPECT().MyFriends(gomock.Any()).Return([]gateway.UserSummary{
		{ID: "user-2", Username: "alexa"},
	}, nil)
	gw.EXPECT().SearchUsers(gomock.Any(), "alexa").Return(nil, errors.New("backend down"))

	results := make(chan []gateway.UserSummary, 1)
	s := NewUserSearcher(gw, time.Millisecond, func(r []gateway.UserSummary) {
		results <- r
	})
	if err := s.LoadFriends(ctx); err != nil {
		t.Fatalf("LoadFriends() error = %v", err)
	}

	s.Query(ctx, "alexa")

	select {
	case got := <-results:
		if len(got) != 1 || got[0].ID != "user-2" {
			t.Errorf("results = %v, want the locally-ranked friend", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no results delivered")
	}
}
