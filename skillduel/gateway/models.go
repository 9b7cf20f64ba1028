package gateway

import "time"

// ChallengeStatus mirrors the server-side challenge lifecycle.
type ChallengeStatus string

const (
	StatusPending   ChallengeStatus = "pending"
	StatusAccepted  ChallengeStatus = "accepted"
	StatusActive    ChallengeStatus = "active"
	StatusCompleted ChallengeStatus = "completed"
	StatusDeclined  ChallengeStatus = "declined"
	StatusExpired   ChallengeStatus = "expired"
	StatusCancelled ChallengeStatus = "cancelled"
)

// NotificationType enumerates server-issued notification kinds. Only
// TypeFriendRequest and TypeChallengeReceived carry inline actions.
type NotificationType string

const (
	TypeFriendRequest         NotificationType = "friend_request"
	TypeFriendAccepted        NotificationType = "friend_accepted"
	TypeChallengeReceived     NotificationType = "challenge_received"
	TypeChallengeAccepted     NotificationType = "challenge_accepted"
	TypeChallengeDeclined     NotificationType = "challenge_declined"
	TypeChallengeLinkAccepted NotificationType = "challenge_link_accepted"
	TypeOpponentProgress      NotificationType = "opponent_progress"
)

// Actionable reports whether the notification type carries accept/decline
// actions.
func (t NotificationType) Actionable() bool {
	return t == TypeFriendRequest || t == TypeChallengeReceived
}

type Profile struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	TotalWins   int       `json:"total_wins"`
	TotalLosses int       `json:"total_losses"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProfileUpdate struct {
	DisplayName string `json:"display_name,omitempty"`
	Bio         string `json:"bio,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// UserSummary is the compact profile shape returned by search and friend
// listings.
type UserSummary struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	DisplayName  string `json:"display_name,omitempty"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	FriendStatus string `json:"friendStatus,omitempty"`
}

type Challenge struct {
	ID               string          `json:"id"`
	ChallengerID     string          `json:"challenger_id"`
	OpponentID       string          `json:"opponent_id"`
	ChallengerSkill  string          `json:"challenger_skill"`
	OpponentSkill    string          `json:"opponent_skill"`
	Deadline         time.Time       `json:"deadline"`
	Status           ChallengeStatus `json:"status"`
	WinnerID         string          `json:"winner_id,omitempty"`
	Message          string          `json:"message,omitempty"`
	ResponseDeadline *time.Time      `json:"response_deadline,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	Challenger       *UserSummary    `json:"challenger,omitempty"`
	Opponent         *UserSummary    `json:"opponent,omitempty"`
}

type CheckinEntry struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
	Notes     string `json:"notes,omitempty"`
}

type ChallengeProgress struct {
	ID                   string         `json:"id"`
	ChallengeID          string         `json:"challenge_id"`
	UserID               string         `json:"user_id"`
	SkillName            string         `json:"skill_name"`
	CompletedDays        int            `json:"completed_days"`
	TotalDays            int            `json:"total_days"`
	CompletionPercentage float64        `json:"completion_percentage"`
	LastCheckin          *time.Time     `json:"last_checkin,omitempty"`
	DailyLog             []CheckinEntry `json:"daily_log,omitempty"`
}

// ChallengeWithProgress pairs a challenge with both participants'
// progress records, keyed from the caller's perspective.
type ChallengeWithProgress struct {
	Challenge        Challenge          `json:"challenge"`
	MyProgress       *ChallengeProgress `json:"my_progress,omitempty"`
	OpponentProgress *ChallengeProgress `json:"opponent_progress,omitempty"`
}

type CreateChallengeRequest struct {
	OpponentUsername string    `json:"opponent_username"`
	ChallengerSkill  string    `json:"challenger_skill"`
	OpponentSkill    string    `json:"opponent_skill"`
	Deadline         time.Time `json:"deadline"`
	Message          string    `json:"message,omitempty"`
	ResponseDays     int       `json:"response_days,omitempty"`
}

type InviteLink struct {
	Code        string    `json:"code"`
	ChallengeID string    `json:"challenge_id"`
	Skill       string    `json:"skill"`
	Deadline    time.Time `json:"deadline"`
	Message     string    `json:"message,omitempty"`
}

type FriendRequest struct {
	ID           string `json:"id"`
	FriendshipID string `json:"friendship_id"`
	Username     string `json:"username"`
	DisplayName  string `json:"display_name,omitempty"`
}

// NotificationData carries the type-dependent payload. Unknown keys are
// dropped; only the ids the client acts on are kept.
type NotificationData struct {
	RequesterID string `json:"requester_id,omitempty"`
	ChallengeID string `json:"challenge_id,omitempty"`
}

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message,omitempty"`
	Read      bool             `json:"read"`
	Data      NotificationData `json:"data"`
	CreatedAt time.Time        `json:"created_at"`
}
