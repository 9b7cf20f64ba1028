package planstore

// PlanDays is the fixed length of a generated learning plan.
const PlanDays = 30

// Feedback is the user's difficulty rating for a completed day.
type Feedback string

const (
	FeedbackEasy Feedback = "easy"
	FeedbackOkay Feedback = "okay"
	FeedbackHard Feedback = "hard"
)

func (f Feedback) Valid() bool {
	switch f {
	case FeedbackEasy, FeedbackOkay, FeedbackHard:
		return true
	}
	return false
}

type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Instruction string `json:"instruction"`
	Completed   bool   `json:"completed"`
}

type Day struct {
	Day       int      `json:"day"`
	Tasks     []Task   `json:"tasks"`
	Completed bool     `json:"completed"`
	Feedback  Feedback `json:"feedback,omitempty"`
}

type Milestone struct {
	Week int    `json:"week"`
	Goal string `json:"goal"`
}

// Plan is the 30-day task schedule for one skill. It is produced once by
// the external generator and only mutated through the store.
type Plan struct {
	SkillName        string      `json:"skillName"`
	Days             []Day       `json:"days"`
	CurrentDay       int         `json:"currentDay"`
	WeeklyMilestones []Milestone `json:"weeklyMilestones"`
}

// Clone returns a deep copy so callers can never mutate store state
// through a returned plan.
func (p *Plan) Clone() *Plan {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Days = make([]Day, len(p.Days))
	for i, d := range p.Days {
		cp.Days[i] = d
		cp.Days[i].Tasks = append([]Task(nil), d.Tasks...)
	}
	cp.WeeklyMilestones = append([]Milestone(nil), p.WeeklyMilestones...)
	return &cp
}

// CompletedDays counts days marked completed.
func (p *Plan) CompletedDays() int {
	n := 0
	for _, d := range p.Days {
		if d.Completed {
			n++
		}
	}
	return n
}

// Finished reports whether every day of the plan is completed.
func (p *Plan) Finished() bool {
	return len(p.Days) == PlanDays && p.CompletedDays() == PlanDays
}
