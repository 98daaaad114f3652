package cooking

import "strings"

// VoiceAdapter maps recognized phrases onto session operations. It is a
// thin adapter over the Controller: no language understanding happens here,
// just normalized phrase lookup, so any speech recognizer the host wires up
// can drive a session hands-free.
type VoiceAdapter struct {
	controller *Controller
}

// NewVoiceAdapter creates an adapter bound to a session controller.
func NewVoiceAdapter(c *Controller) *VoiceAdapter {
	return &VoiceAdapter{controller: c}
}

// Handle executes the operation for a recognized phrase. It returns the
// spoken-back response text and whether the phrase was recognized.
// Unrecognized phrases are ignored, not errors: the recognizer produces
// plenty of kitchen noise.
func (v *VoiceAdapter) Handle(phrase string) (response string, ok bool) {
	c := v.controller

	switch normalizePhrase(phrase) {
	case "next", "next step", "continue":
		c.Next()
		return v.currentInstruction(), true

	case "back", "previous", "previous step", "go back":
		c.Previous()
		return v.currentInstruction(), true

	case "done", "step done", "complete", "mark complete":
		c.ToggleStepComplete()
		return "Step marked.", true

	case "start timer", "start the timer":
		if err := c.StartDetectedTimer(); err != nil {
			return "There is no timer on this step.", true
		}
		return "Timer started.", true

	case "pause timer", "pause the timer", "stop timer":
		if err := c.PauseDetectedTimer(); err != nil {
			return "There is no timer on this step.", true
		}
		return "Timer paused.", true

	case "reset timer", "reset the timer":
		if err := c.ResetDetectedTimer(); err != nil {
			return "There is no timer on this step.", true
		}
		return "Timer reset.", true

	case "repeat", "read step", "what's the step", "current step":
		return v.currentInstruction(), true
	}

	return "", false
}

// currentInstruction reads the current step's text for speech output.
func (v *VoiceAdapter) currentInstruction() string {
	snap := v.controller.Snapshot()
	return snap.Steps[snap.Current].Instruction
}

// normalizePhrase lowercases and trims recognizer output, dropping a
// leading wake word if present.
func normalizePhrase(phrase string) string {
	p := strings.ToLower(strings.TrimSpace(phrase))
	p = strings.TrimPrefix(p, "hey chef,")
	p = strings.TrimPrefix(p, "hey chef")
	p = strings.Trim(strings.TrimSpace(p), ".!?")
	return strings.TrimSpace(p)
}
