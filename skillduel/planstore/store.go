package planstore

import (
	"log/slog"
	"sync"
)

// Store owns the set of skills a user is pursuing and, per skill, an
// optional generated plan. Every mutation reads then writes the current
// snapshot under one lock, so repeated calls in the same tick never lose
// updates. Lifecycle: created at session start, Reset at session end.
type Store struct {
	mu          sync.RWMutex
	skills      []string
	activeSkill string
	plans       map[string]*Plan

	subMu    sync.Mutex
	subs     map[int]chan struct{}
	nextSub  int
	onRemove []func(skill string)
}

func NewStore() *Store {
	return &Store{
		plans: make(map[string]*Plan),
		subs:  make(map[int]chan struct{}),
	}
}

// OnRemove registers a hook invoked after a skill is removed. The sync
// engine uses it to drop the challenge binding for that skill.
func (s *Store) OnRemove(fn func(skill string)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.onRemove = append(s.onRemove, fn)
}

// Subscribe returns a change-notification channel and a release func.
// Notifications are coalesced; a slow subscriber sees at most one pending
// signal.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan struct{}, 1)
	s.subs[id] = ch
	return ch, func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// AddSkill appends a skill and makes it active. Adding an existing name
// is a no-op, so a sync-discovered skill never disturbs a user-added one.
func (s *Store) AddSkill(name string) {
	s.mu.Lock()
	for _, existing := range s.skills {
		if existing == name {
			s.mu.Unlock()
			return
		}
	}
	s.skills = append(s.skills, name)
	s.activeSkill = name
	s.mu.Unlock()

	slog.Debug("Skill added", slog.String("type", "store"), slog.String("skill", name))
	s.notify()
}

// RemoveSkill drops the skill and its plan. If it was active, the first
// remaining skill becomes active.
func (s *Store) RemoveSkill(name string) {
	s.mu.Lock()
	found := false
	remaining := s.skills[:0]
	for _, existing := range s.skills {
		if existing == name {
			found = true
			continue
		}
		remaining = append(remaining, existing)
	}
	if !found {
		s.mu.Unlock()
		return
	}
	s.skills = remaining
	delete(s.plans, name)
	if s.activeSkill == name {
		if len(s.skills) > 0 {
			s.activeSkill = s.skills[0]
		} else {
			s.activeSkill = ""
		}
	}
	s.mu.Unlock()

	s.subMu.Lock()
	hooks := make([]func(string), len(s.onRemove))
	copy(hooks, s.onRemove)
	s.subMu.Unlock()
	for _, fn := range hooks {
		fn(name)
	}

	slog.Debug("Skill removed", slog.String("type", "store"), slog.String("skill", name))
	s.notify()
}

func (s *Store) Skills() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.skills...)
}

func (s *Store) ActiveSkill() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeSkill
}

// SetActiveSkill switches the active skill; unknown names are ignored.
func (s *Store) SetActiveSkill(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.skills {
		if existing == name {
			s.activeSkill = name
			return
		}
	}
}

// SetPlanForSkill replaces the skill's plan wholesale. Used once per
// skill with the external generator's result.
func (s *Store) SetPlanForSkill(name string, plan *Plan) {
	if plan == nil {
		return
	}
	cp := plan.Clone()
	cp.SkillName = name
	if cp.CurrentDay < 1 {
		cp.CurrentDay = 1
	}

	s.mu.Lock()
	s.plans[name] = cp
	s.mu.Unlock()
	s.notify()
}

// Plan returns a copy of the named skill's plan, or nil.
func (s *Store) Plan(name string) *Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plans[name].Clone()
}

// ActivePlan returns a copy of the active skill's plan, or nil when no
// skill is active or the active skill has no plan yet.
func (s *Store) ActivePlan() *Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activeSkill == "" {
		return nil
	}
	return s.plans[s.activeSkill].Clone()
}

func (s *Store) HasPlan(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.plans[name]
	return ok
}

// AllPlans returns copies of every stored plan, keyed by skill name.
func (s *Store) AllPlans() map[string]*Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]*Plan, len(s.plans))
	for name, plan := range s.plans {
		out[name] = plan.Clone()
	}
	return out
}

// CompleteTask marks one task completed within the active plan's day at
// dayIndex. No effect when the active skill has no plan or the index/id
// does not match. A completed task never reverts within the same day.
func (s *Store) CompleteTask(dayIndex int, taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	plan := s.plans[s.activeSkill]
	if plan == nil || dayIndex < 0 || dayIndex >= len(plan.Days) {
		return
	}
	day := &plan.Days[dayIndex]
	for i := range day.Tasks {
		if day.Tasks[i].ID == taskID {
			day.Tasks[i].Completed = true
			s.notify()
			return
		}
	}
}

// SubmitFeedback records the difficulty rating for the day at dayIndex
// and marks the day completed. Feedback is the only path to a completed
// day.
func (s *Store) SubmitFeedback(dayIndex int, feedback Feedback) {
	if !feedback.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	plan := s.plans[s.activeSkill]
	if plan == nil || dayIndex < 0 || dayIndex >= len(plan.Days) {
		return
	}
	plan.Days[dayIndex].Feedback = feedback
	plan.Days[dayIndex].Completed = true
	s.notify()
}

// CompleteDay advances the active plan by exactly one day, capped at the
// plan length. Calling it at the cap is a no-op.
func (s *Store) CompleteDay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	plan := s.plans[s.activeSkill]
	if plan == nil || plan.CurrentDay >= PlanDays {
		return
	}
	plan.CurrentDay++
	s.notify()
}

// Reset clears all state at session end.
func (s *Store) Reset() {
	s.mu.Lock()
	s.skills = nil
	s.activeSkill = ""
	s.plans = make(map[string]*Plan)
	s.mu.Unlock()
	s.notify()
}
