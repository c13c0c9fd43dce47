package windfarm

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string `yaml:"action"`
	Keys   string `yaml:"keys,omitempty"`
	Label  string `yaml:"label,omitempty"`
	Frames int    `yaml:"frames,omitempty"`
}

// script is the top-level structure of an input script.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner sequences injected key presses, waits and screenshots across
// ticks for automated runs. Attach it with WithScript.
//
// Actions:
//
//	keys        queue the characters in Keys ("esc" for Escape)
//	wait        idle for Frames ticks
//	screenshot  queue a screenshot named Label
//	quit        request exit
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML or JSON input script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "keys":
			if st.Keys == "" {
				return nil, fmt.Errorf("parse script: step %d: keys is empty", i+1)
			}
			if !utf8.ValidString(st.Keys) {
				return nil, fmt.Errorf("parse script: step %d: keys is not valid UTF-8", i+1)
			}
		case "wait", "screenshot", "quit":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i+1, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// scriptKeys converts a keys field to runes. The word "esc" stands for the
// Escape key.
func scriptKeys(s string) []rune {
	if strings.EqualFold(s, "esc") || strings.EqualFold(s, "escape") {
		return []rune{KeyEscape}
	}
	return []rune(s)
}

// step advances the runner by one tick. Called from App.Tick.
func (r *ScriptRunner) step(a *App) {
	if r.done {
		return
	}
	// Wait for injected keys to drain before advancing.
	if a.PendingKeys() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "keys":
		a.InjectKeys(scriptKeys(st.Keys)...)
	case "screenshot":
		a.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "quit":
		a.quit = true
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && a.PendingKeys() == 0 {
		r.done = true
	}
}
