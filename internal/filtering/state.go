package filtering

import "sync"

// ActionType identifies which FilterState field an action mutates.
type ActionType string

const (
	ActionCompany           ActionType = "company"
	ActionSkill             ActionType = "skill"
	ActionLayoff            ActionType = "layoff"
	ActionApproachingTenure ActionType = "approaching_tenure"
	ActionSentimentIssues   ActionType = "sentiment_issues"
	ActionTab               ActionType = "tab"
)

// Tab identifiers for the active view.
const (
	TabTalent    = "talent"
	TabRoles     = "roles"
	TabCompanies = "companies"
)

const allFilter = "all"

// Action is a single instruction to change one field of the filter state.
// Actions are transient: produced by the intent parser or manual controls,
// consumed once.
type Action struct {
	Type ActionType
	// Text carries the company name, skill term, or tab id.
	Text string
	// On carries the value of boolean-valued actions.
	On bool
}

func CompanyAction(name string) Action { return Action{Type: ActionCompany, Text: name} }
func SkillAction(term string) Action   { return Action{Type: ActionSkill, Text: term} }
func LayoffAction() Action             { return Action{Type: ActionLayoff, On: true} }
func ApproachingTenureAction() Action  { return Action{Type: ActionApproachingTenure, On: true} }
func SentimentIssuesAction() Action    { return Action{Type: ActionSentimentIssues, On: true} }
func TabAction(tab string) Action      { return Action{Type: ActionTab, Text: tab} }

// Snapshot is a consistent value copy of the filter state, safe to read while
// the owner keeps mutating.
type Snapshot struct {
	SearchTerm             string
	Department             string
	Industry               string
	ShowOnlyLayoffAffected bool
	FilterBySkill          string
	ShowSentimentIssues    bool
	ShowApproachingTenure  bool
	ActiveTab              string
}

// State is the single authoritative set of active filter criteria for a
// session. Any component may request a mutation; every mutation goes through
// Apply/ApplyAll under one lock, so an action list from one parse is applied
// atomically relative to concurrent Snapshot reads. Applying the same action
// twice is a no-op the second time.
type State struct {
	mu   sync.Mutex
	snap Snapshot
}

func NewState() *State {
	return &State{snap: defaults()}
}

func defaults() Snapshot {
	return Snapshot{
		Department: allFilter,
		Industry:   allFilter,
		ActiveTab:  TabTalent,
	}
}

// ApplyAll applies the actions in order under a single lock. Order matters
// only for tab directives: the last one wins.
func (s *State) ApplyAll(actions []Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, action := range actions {
		s.apply(action)
	}
}

// Apply applies one action.
func (s *State) Apply(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apply(action)
}

func (s *State) apply(action Action) {
	switch action.Type {
	case ActionCompany:
		s.snap.SearchTerm = action.Text
	case ActionSkill:
		s.snap.FilterBySkill = action.Text
	case ActionLayoff:
		s.snap.ShowOnlyLayoffAffected = action.On
	case ActionApproachingTenure:
		s.snap.ShowApproachingTenure = action.On
	case ActionSentimentIssues:
		s.snap.ShowSentimentIssues = action.On
	case ActionTab:
		s.snap.ActiveTab = action.Text
	}
}

func (s *State) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.SearchTerm = term
}

func (s *State) SetDepartment(department string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Department = department
}

func (s *State) SetIndustry(industry string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Industry = industry
}

// Snapshot returns a consistent copy of the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Reset restores the defaults.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = defaults()
}
