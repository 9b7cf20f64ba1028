// Package session defines the boundary to the external identity
// provider. The core never creates sessions; it only reads the current
// one and reacts to sign-in/sign-out transitions.
package session

import (
	"context"
	"errors"
)

var ErrNoSession = errors.New("no active session")

type State int

const (
	SignedOut State = iota
	SignedIn
)

type Session struct {
	UserID      string
	Username    string
	AccessToken string
}

// Provider is implemented by the host application's identity layer.
// Session returns ErrNoSession while signed out. States emits a value on
// every transition; implementations may return nil when they never
// transition (static tokens, tests).
type Provider interface {
	Session(ctx context.Context) (*Session, error)
	States() <-chan State
}

// StaticProvider wraps a fixed token, for CLI use and tests.
type StaticProvider struct {
	session Session
}

func NewStaticProvider(userID, username, accessToken string) *StaticProvider {
	return &StaticProvider{session: Session{
		UserID:      userID,
		Username:    username,
		AccessToken: accessToken,
	}}
}

func (p *StaticProvider) Session(_ context.Context) (*Session, error) {
	if p.session.AccessToken == "" {
		return nil, ErrNoSession
	}
	s := p.session
	return &s, nil
}

func (p *StaticProvider) States() <-chan State {
	return nil
}
