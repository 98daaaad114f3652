package cooking

import (
	"testing"
	"time"

	"souschef/internal/event"
)

func newVoiceFixture(t *testing.T) (*VoiceAdapter, *Controller) {
	t.Helper()
	c, err := NewController(testRecipe(), event.NewBus(), Options{TickInterval: time.Hour})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(c.Close)
	c.Start()
	return NewVoiceAdapter(c), c
}

func TestVoiceAdapter_Navigation(t *testing.T) {
	v, c := newVoiceFixture(t)

	resp, ok := v.Handle("next")
	if !ok {
		t.Fatal("phrase not recognized")
	}
	if c.Snapshot().Current != 1 {
		t.Errorf("Current = %d, want 1", c.Snapshot().Current)
	}
	if resp != c.Recipe().Steps[1] {
		t.Errorf("response = %q, want the new step's text", resp)
	}

	if _, ok := v.Handle("go back"); !ok {
		t.Fatal("phrase not recognized")
	}
	if c.Snapshot().Current != 0 {
		t.Errorf("Current = %d, want 0", c.Snapshot().Current)
	}
}

func TestVoiceAdapter_WakeWordAndPunctuation(t *testing.T) {
	v, c := newVoiceFixture(t)

	if _, ok := v.Handle("Hey chef, next step!"); !ok {
		t.Fatal("wake-word phrase not recognized")
	}
	if c.Snapshot().Current != 1 {
		t.Errorf("Current = %d, want 1", c.Snapshot().Current)
	}
}

func TestVoiceAdapter_MarkDone(t *testing.T) {
	v, c := newVoiceFixture(t)

	if _, ok := v.Handle("done"); !ok {
		t.Fatal("phrase not recognized")
	}
	snap := c.Snapshot()
	if !snap.Steps[0].Completed {
		t.Error("step 0 not completed")
	}
	if snap.Current != 1 {
		t.Errorf("Current = %d, want advanced to 1", snap.Current)
	}
}

func TestVoiceAdapter_TimerControl(t *testing.T) {
	v, c := newVoiceFixture(t)
	c.Next() // step 1 carries a detected timer

	if resp, ok := v.Handle("start timer"); !ok || resp != "Timer started." {
		t.Fatalf("Handle(start timer) = %q, %v", resp, ok)
	}
	d, _ := c.engine.Detected()
	if !d.Running {
		t.Error("detected timer not running")
	}

	if resp, ok := v.Handle("pause timer"); !ok || resp != "Timer paused." {
		t.Fatalf("Handle(pause timer) = %q, %v", resp, ok)
	}

	// On a step without a timer the command degrades to a spoken notice.
	c.Previous()
	c.Previous()
	resp, ok := v.Handle("start timer")
	if !ok || resp != "There is no timer on this step." {
		t.Errorf("Handle(start timer) without timer = %q, %v", resp, ok)
	}
}

func TestVoiceAdapter_Repeat(t *testing.T) {
	v, c := newVoiceFixture(t)

	resp, ok := v.Handle("repeat")
	if !ok {
		t.Fatal("phrase not recognized")
	}
	if resp != c.Recipe().Steps[0] {
		t.Errorf("response = %q, want current step text", resp)
	}
}

func TestVoiceAdapter_UnrecognizedPhrase(t *testing.T) {
	v, c := newVoiceFixture(t)

	before := c.Snapshot()
	resp, ok := v.Handle("play some music")
	if ok || resp != "" {
		t.Errorf("Handle() = %q, %v for kitchen noise", resp, ok)
	}
	if got := c.Snapshot(); got.Current != before.Current {
		t.Error("unrecognized phrase changed session state")
	}
}
