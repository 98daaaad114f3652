package cooking

import "fmt"

// Milestone kinds, in evaluation order.
const (
	MilestoneFirstStep  = "first-step"
	MilestoneHalfway    = "halfway"
	MilestoneAlmostDone = "almost-done"
	MilestoneStreak     = "streak"
)

// Milestone is a progress achievement surfaced as a transient banner.
// Milestones auto-dismiss and never queue: a new one replaces an unshown
// one.
type Milestone struct {
	Kind    string
	Title   string
	Message string
}

// EvaluateMilestone is a pure function of the completed-step count and the
// total step count, evaluated after every completion. Rules are checked in
// order and only the first match fires:
//
//  1. exactly one completed step
//  2. completed == totalSteps/2 (integer division) with more than one done
//  3. progress in [75%, 100%)
//  4. full completion: no milestone (a completion banner is shown instead)
//  5. every third completion
//
// The boolean result is false when no rule matches or on full completion.
func EvaluateMilestone(completed, total int) (Milestone, bool) {
	if total <= 0 || completed <= 0 || completed > total {
		return Milestone{}, false
	}

	switch {
	case completed == 1:
		return Milestone{
			Kind:    MilestoneFirstStep,
			Title:   "First step done!",
			Message: "Great start — keep it going.",
		}, true

	case completed == total/2 && completed > 1:
		return Milestone{
			Kind:    MilestoneHalfway,
			Title:   "Halfway there!",
			Message: fmt.Sprintf("%d of %d steps done.", completed, total),
		}, true

	case completed*4 >= total*3 && completed < total:
		return Milestone{
			Kind:    MilestoneAlmostDone,
			Title:   "Almost done!",
			Message: "The finish line is in sight.",
		}, true

	case completed == total:
		// Full completion is signaled by the session's completion banner,
		// not a milestone.
		return Milestone{}, false

	case completed%3 == 0:
		return Milestone{
			Kind:    MilestoneStreak,
			Title:   "On a roll!",
			Message: fmt.Sprintf("%d steps down.", completed),
		}, true
	}

	return Milestone{}, false
}
