package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/skillduel/skillduel/skillduel/logger"
	"github.com/skillduel/skillduel/skillduel/planstore"
	"github.com/skillduel/skillduel/skillduel/session"
)

const (
	profileCacheSize = 256
	profileCacheTTL  = 15 * time.Minute

	// DefaultNotificationLimit is used for display fetches,
	// LookupNotificationLimit when scanning for a matching notification.
	DefaultNotificationLimit = 20
	LookupNotificationLimit  = 50
)

// API is the full outbound call surface consumed by the core. Pure
// request/response; the client holds no domain state.
type API interface {
	MyProfile(ctx context.Context) (*Profile, error)
	UpdateProfile(ctx context.Context, update ProfileUpdate) (*Profile, error)
	SearchUsers(ctx context.Context, query string) ([]UserSummary, error)
	ProfileByUsername(ctx context.Context, username string) (*Profile, error)

	MyChallenges(ctx context.Context, status ChallengeStatus) ([]ChallengeWithProgress, error)
	CreateChallenge(ctx context.Context, req CreateChallengeRequest) (*Challenge, error)
	RespondToChallenge(ctx context.Context, challengeID string, accept bool) error
	GiveUpChallenge(ctx context.Context, challengeID string) error
	WithdrawChallenge(ctx context.Context, challengeID string) error
	DailyCheckin(ctx context.Context, challengeID string, completed bool, notes string) error
	CreateInviteLink(ctx context.Context, skill string, deadline time.Time, message string) (*InviteLink, error)
	AcceptInviteLink(ctx context.Context, code string) (*Challenge, error)

	GeneratePlan(ctx context.Context, skillName string) (*planstore.Plan, error)

	MyFriends(ctx context.Context) ([]UserSummary, error)
	FriendRequests(ctx context.Context) ([]FriendRequest, error)
	AddFriend(ctx context.Context, userID string) error
	RespondToRequest(ctx context.Context, friendshipID string, accept bool) error
	RemoveFriend(ctx context.Context, friendID string) error

	Notifications(ctx context.Context, limit int) ([]Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkAsRead(ctx context.Context, notificationID string) error
	MarkAllAsRead(ctx context.Context) error
}

// Client talks JSON over HTTP to the SkillDuel backend, attaching the
// bearer token from the session provider on every request.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	sessions     session.Provider
	profileCache *lru.Cache
}

var _ API = (*Client)(nil)

type cachedProfile struct {
	profile   *Profile
	timestamp time.Time
}

func NewClient(baseURL string, timeout time.Duration, sessions session.Provider) *Client {
	cache, _ := lru.New(profileCacheSize)
	return &Client{
		baseURL:  baseURL,
		sessions: sessions,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		profileCache: cache,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, method, path, body, out)
	logger.LogAPICall(path, time.Since(start), err)
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body any, out any) error {
	sess, err := c.sessions.Session(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return ErrNotAuthenticated
		}
		return fmt.Errorf("failed to resolve session: %w", err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+sess.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var detail struct {
			Detail string `json:"detail"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&detail); decodeErr == nil {
			apiErr.Detail = detail.Detail
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// ---- Profiles ----

func (c *Client) MyProfile(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/profiles/me", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodPatch, "/profiles/me", update, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) SearchUsers(ctx context.Context, query string) ([]UserSummary, error) {
	var results []UserSummary
	path := "/profiles/search?q=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// ProfileByUsername resolves a profile, serving repeat lookups from an
// LRU cache for 15 minutes. Profiles are read-mostly; a stale display
// name is acceptable here.
func (c *Client) ProfileByUsername(ctx context.Context, username string) (*Profile, error) {
	if cached, ok := c.profileCache.Get(username); ok {
		if entry, ok := cached.(cachedProfile); ok && time.Since(entry.timestamp) < profileCacheTTL {
			return entry.profile, nil
		}
	}

	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/profiles/"+url.PathEscape(username), nil, &profile); err != nil {
		return nil, err
	}
	c.profileCache.Add(username, cachedProfile{profile: &profile, timestamp: time.Now()})
	return &profile, nil
}

// ---- Challenges ----

func (c *Client) MyChallenges(ctx context.Context, status ChallengeStatus) ([]ChallengeWithProgress, error) {
	path := "/challenges"
	if status != "" {
		path += "?status=" + url.QueryEscape(string(status))
	}
	var challenges []ChallengeWithProgress
	if err := c.do(ctx, http.MethodGet, path, nil, &challenges); err != nil {
		return nil, err
	}
	return challenges, nil
}

func (c *Client) CreateChallenge(ctx context.Context, req CreateChallengeRequest) (*Challenge, error) {
	var challenge Challenge
	if err := c.do(ctx, http.MethodPost, "/challenges", req, &challenge); err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (c *Client) RespondToChallenge(ctx context.Context, challengeID string, accept bool) error {
	body := struct {
		Accept bool `json:"accept"`
	}{Accept: accept}
	return c.do(ctx, http.MethodPost, "/challenges/"+url.PathEscape(challengeID)+"/respond", body, nil)
}

func (c *Client) GiveUpChallenge(ctx context.Context, challengeID string) error {
	return c.do(ctx, http.MethodPost, "/challenges/"+url.PathEscape(challengeID)+"/give-up", nil, nil)
}

func (c *Client) WithdrawChallenge(ctx context.Context, challengeID string) error {
	return c.do(ctx, http.MethodPost, "/challenges/"+url.PathEscape(challengeID)+"/withdraw", nil, nil)
}

func (c *Client) DailyCheckin(ctx context.Context, challengeID string, completed bool, notes string) error {
	body := struct {
		Completed bool   `json:"completed"`
		Notes     string `json:"notes,omitempty"`
	}{Completed: completed, Notes: notes}
	return c.do(ctx, http.MethodPost, "/challenges/"+url.PathEscape(challengeID)+"/checkin", body, nil)
}

func (c *Client) CreateInviteLink(ctx context.Context, skill string, deadline time.Time, message string) (*InviteLink, error) {
	body := CreateChallengeRequest{
		OpponentUsername: "_link_", // placeholder, not used for links
		ChallengerSkill:  skill,
		OpponentSkill:    skill,
		Deadline:         deadline,
		Message:          message,
	}
	var link InviteLink
	if err := c.do(ctx, http.MethodPost, "/challenges/invite-link", body, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

func (c *Client) AcceptInviteLink(ctx context.Context, code string) (*Challenge, error) {
	var challenge Challenge
	if err := c.do(ctx, http.MethodPost, "/challenges/invite/"+url.PathEscape(code)+"/accept", nil, &challenge); err != nil {
		return nil, err
	}
	return &challenge, nil
}

// ---- Learning plan ----

// GeneratePlan asks the opaque server-side generator for a fresh 30-day
// plan. The result always has the fixed shape; content is the server's
// business.
func (c *Client) GeneratePlan(ctx context.Context, skillName string) (*planstore.Plan, error) {
	body := struct {
		SkillName string `json:"skill_name"`
	}{SkillName: skillName}
	var plan planstore.Plan
	if err := c.do(ctx, http.MethodPost, "/learning-plan", body, &plan); err != nil {
		return nil, err
	}
	plan.SkillName = skillName
	if plan.CurrentDay < 1 {
		plan.CurrentDay = 1
	}
	return &plan, nil
}

// ---- Friends ----

func (c *Client) MyFriends(ctx context.Context) ([]UserSummary, error) {
	var friends []UserSummary
	if err := c.do(ctx, http.MethodGet, "/friends", nil, &friends); err != nil {
		return nil, err
	}
	return friends, nil
}

func (c *Client) FriendRequests(ctx context.Context) ([]FriendRequest, error) {
	var requests []FriendRequest
	if err := c.do(ctx, http.MethodGet, "/friends/requests", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *Client) AddFriend(ctx context.Context, userID string) error {
	body := struct {
		FriendID string `json:"friend_id"`
	}{FriendID: userID}
	return c.do(ctx, http.MethodPost, "/friends", body, nil)
}

func (c *Client) RespondToRequest(ctx context.Context, friendshipID string, accept bool) error {
	body := struct {
		Accept bool `json:"accept"`
	}{Accept: accept}
	return c.do(ctx, http.MethodPost, "/friends/"+url.PathEscape(friendshipID)+"/respond", body, nil)
}

func (c *Client) RemoveFriend(ctx context.Context, friendID string) error {
	return c.do(ctx, http.MethodDelete, "/friends/"+url.PathEscape(friendID), nil, nil)
}

// ---- Notifications ----

func (c *Client) Notifications(ctx context.Context, limit int) ([]Notification, error) {
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}
	var notifications []Notification
	path := fmt.Sprintf("/notifications?limit=%d", limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var count struct {
		Unread int `json:"unread"`
	}
	if err := c.do(ctx, http.MethodGet, "/notifications/unread-count", nil, &count); err != nil {
		return 0, err
	}
	return count.Unread, nil
}

func (c *Client) MarkAsRead(ctx context.Context, notificationID string) error {
	return c.do(ctx, http.MethodPost, "/notifications/"+url.PathEscape(notificationID)+"/read", nil, nil)
}

func (c *Client) MarkAllAsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/notifications/read-all", nil, nil)
}
