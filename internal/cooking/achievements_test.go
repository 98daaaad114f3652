package cooking

import "testing"

func TestEvaluateMilestone(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		wantKind  string
		wantOK    bool
	}{
		{"first step", 1, 10, MilestoneFirstStep, true},
		{"second step no milestone", 2, 10, "", false},
		{"third step streak", 3, 10, MilestoneStreak, true},
		{"fourth step no milestone", 4, 10, "", false},
		{"halfway", 5, 10, MilestoneHalfway, true},
		{"sixth step streak", 6, 10, MilestoneStreak, true},
		{"seventh step no milestone", 7, 10, "", false},
		{"eighty percent", 8, 10, MilestoneAlmostDone, true},
		{"ninety percent beats streak", 9, 10, MilestoneAlmostDone, true},
		{"full completion suppressed", 10, 10, "", false},

		{"single step recipe first wins", 1, 1, MilestoneFirstStep, true},
		{"two step recipe completion", 2, 2, "", false},
		{"halfway needs more than one", 1, 2, MilestoneFirstStep, true},
		{"three of four almost done", 3, 4, MilestoneAlmostDone, true},
		{"half of three rounds down", 1, 3, MilestoneFirstStep, true},

		{"zero completed", 0, 10, "", false},
		{"zero total", 1, 0, "", false},
		{"completed beyond total", 11, 10, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EvaluateMilestone(tt.completed, tt.total)
			if ok != tt.wantOK {
				t.Fatalf("EvaluateMilestone(%d, %d) ok = %v, want %v",
					tt.completed, tt.total, ok, tt.wantOK)
			}
			if got.Kind != tt.wantKind {
				t.Errorf("EvaluateMilestone(%d, %d) kind = %q, want %q",
					tt.completed, tt.total, got.Kind, tt.wantKind)
			}
			if ok && (got.Title == "" || got.Message == "") {
				t.Error("milestones must carry a title and message")
			}
		})
	}
}

// A ten step recipe completed in order fires milestones at 1, 3, 5, 6, 8
// and 9, with completion itself signaled separately.
func TestEvaluateMilestone_TenStepSequence(t *testing.T) {
	want := map[int]string{
		1: MilestoneFirstStep,
		3: MilestoneStreak,
		5: MilestoneHalfway,
		6: MilestoneStreak,
		8: MilestoneAlmostDone,
		9: MilestoneAlmostDone,
	}

	for completed := 1; completed <= 10; completed++ {
		got, ok := EvaluateMilestone(completed, 10)
		wantKind, wantOK := want[completed]
		if ok != wantOK {
			t.Errorf("at %d completed: ok = %v, want %v", completed, ok, wantOK)
			continue
		}
		if got.Kind != wantKind {
			t.Errorf("at %d completed: kind = %q, want %q", completed, got.Kind, wantKind)
		}
	}
}
