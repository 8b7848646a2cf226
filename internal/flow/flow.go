// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kishore7snehil/quickstart-prompt-generator/internal/store"
	"github.com/kishore7snehil/quickstart-prompt-generator/pkg/types"
)

// Reserved inputs recognized at any step, matched case-insensitively.
const (
	inputBack   = "back"
	inputCancel = "cancel"
)

// Existing-session decision options.
const (
	choiceContinue = "continue"
	choiceReset    = "reset"
	choiceCancel   = "cancel"
)

// ErrCancelled is returned when the user aborts the questionnaire, either at
// the existing-session decision or with a literal "cancel" answer. The
// persisted session file is left exactly as it was.
var ErrCancelled = errors.New("initialization cancelled")

// Controller walks the step sequence for one session.
type Controller struct {
	store *store.Store
	io    TerminalIO
	steps []Step
	sess  *types.Session
}

// Run drives the questionnaire for mode to completion. An existing persisted
// session triggers the continue/reset/cancel decision first; every accepted
// answer is committed to the store before the next step is asked.
func Run(mode types.Mode, st *store.Store, io TerminalIO) (*types.Session, error) {
	sess, err := resume(mode, st, io)
	if err != nil {
		return nil, err
	}

	c := &Controller{store: st, io: io, steps: Steps(mode), sess: sess}
	if err := c.run(); err != nil {
		return c.sess, err
	}
	return c.sess, nil
}

// resume applies the existing-session decision. A corrupt session file is
// treated as absent but left untouched on disk; only an explicit reset
// removes it.
func resume(mode types.Mode, st *store.Store, io TerminalIO) (*types.Session, error) {
	sess, err := st.Load()
	if err != nil {
		if !errors.Is(err, store.ErrCorruptSession) {
			return nil, err
		}
		io.Notice(fmt.Sprintf("Existing session file could not be read and will be ignored (%v).", err))
		io.Notice("It stays on disk until you choose reset.")
		sess = nil
	}
	if sess == nil {
		return types.NewSession(mode), nil
	}

	var options []string
	if sess.Mode == mode {
		io.Notice("Existing session detected:\n" + sess.Summary())
		options = []string{choiceContinue, choiceReset, choiceCancel}
	} else {
		// Cross-mode continue would replay answers against the wrong step
		// definitions, so only reset and cancel are offered.
		io.Notice(fmt.Sprintf("An existing %s session was found, but %s mode was requested.", sess.Mode, mode))
		options = []string{choiceReset, choiceCancel}
	}

	choice, err := io.Choice("What would you like to do?", options)
	if err != nil {
		return nil, err
	}
	switch choice {
	case choiceCancel:
		return nil, ErrCancelled
	case choiceReset:
		if err := st.Clear(); err != nil {
			return nil, err
		}
		io.Notice("Session reset. Starting fresh.")
		return types.NewSession(mode), nil
	default:
		io.Notice("Continuing with existing session. You can modify any value.")
		return sess, nil
	}
}

// run is the NEXT/BACK loop. The step index always points at the question
// being asked; visibility is re-evaluated on every transition.
func (c *Controller) run() error {
	i := c.resumeIndex()
	for i < len(c.steps) {
		step := c.steps[i]
		if !step.Visible(Answers(c.sess.Answers)) {
			i++
			continue
		}

		value, action, err := c.ask(step)
		if err != nil {
			return err
		}
		switch action {
		case actionCancel:
			return ErrCancelled
		case actionBack:
			prev, ok := c.popHistory()
			if !ok {
				c.io.Notice("Already at the first question.")
				continue
			}
			i = c.indexOf(prev)
			continue
		}

		c.sess.Answers[step.Key] = value
		c.sess.History = append(c.sess.History, step.Key)
		c.sess.CurrentStep = c.nextKey(i)
		if err := c.store.Save(c.sess); err != nil {
			return err
		}
		i++
	}

	if !c.sess.Complete() {
		c.sess.CurrentStep = types.StepComplete
		if err := c.store.Save(c.sess); err != nil {
			return err
		}
	}
	return nil
}

type stepAction int

const (
	actionAnswer stepAction = iota
	actionBack
	actionCancel
)

// ask collects and validates raw input for one step, re-prompting on
// validation errors until the input is valid or a reserved word is entered.
func (c *Controller) ask(step Step) (any, stepAction, error) {
	for {
		var (
			value  any
			action stepAction
			err    error
		)
		if step.Kind == KindMultiLineList {
			value, action, err = c.collectList(step)
		} else {
			value, action, err = c.askLine(step)
		}
		if err != nil {
			var vErr *ValidationError
			if errors.As(err, &vErr) {
				c.io.Errorf("%s", vErr.Error())
				continue
			}
			return nil, actionAnswer, err
		}
		return value, action, nil
	}
}

func (c *Controller) askLine(step Step) (any, stepAction, error) {
	def := ""
	if v, ok := c.sess.Answers[step.Key].(string); ok {
		def = v
	}
	raw, err := c.io.Prompt(step.Prompt, def)
	if err != nil {
		return nil, actionAnswer, err
	}
	if action, ok := reserved(raw); ok {
		return nil, action, nil
	}
	value, err := step.Validate(raw, Answers(c.sess.Answers))
	if err != nil {
		return nil, actionAnswer, err
	}
	return value, actionAnswer, nil
}

// collectList gathers list entries until an empty line. Entering no new
// entries keeps a previously stored list, so BACK-and-forth does not wipe it.
func (c *Controller) collectList(step Step) (any, stepAction, error) {
	existing := Answers(c.sess.Answers).list(step.Key)
	if len(existing) > 0 {
		c.io.Notice(fmt.Sprintf("Existing entries (%d): press Enter on an empty line to keep them.", len(existing)))
		for i, e := range existing {
			c.io.Notice(fmt.Sprintf("  %d. %s", i+1, e))
		}
	}
	c.io.Notice(step.Prompt)

	var entries []string
	for {
		line, err := c.io.Prompt("  Reference", "")
		if err != nil {
			return nil, actionAnswer, err
		}
		if action, ok := reserved(line); ok {
			return nil, action, nil
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		entries = append(entries, line)
	}

	if len(entries) == 0 && len(existing) > 0 {
		entries = existing
	}
	value, err := step.ValidateList(entries, Answers(c.sess.Answers))
	if err != nil {
		return nil, actionAnswer, err
	}
	return value, actionAnswer, nil
}

func reserved(raw string) (stepAction, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case inputBack:
		return actionBack, true
	case inputCancel:
		return actionCancel, true
	}
	return actionAnswer, false
}

// resumeIndex maps the persisted current step back to a position in the step
// list. Unknown or empty keys start from the beginning.
func (c *Controller) resumeIndex() int {
	if c.sess.CurrentStep == types.StepComplete {
		return len(c.steps)
	}
	return c.indexOf(c.sess.CurrentStep)
}

// indexOf returns the position of key in the step list, or 0 when not found.
func (c *Controller) indexOf(key string) int {
	for i, s := range c.steps {
		if s.Key == key {
			return i
		}
	}
	return 0
}

// nextKey returns the key of the next visible step after position i, or the
// terminal marker when none remain. Answers entered beyond the current step
// are preserved, so the scan only checks visibility.
func (c *Controller) nextKey(i int) string {
	for j := i + 1; j < len(c.steps); j++ {
		if c.steps[j].Visible(Answers(c.sess.Answers)) {
			return c.steps[j].Key
		}
	}
	return types.StepComplete
}

// popHistory removes and returns the most recently visited step key.
func (c *Controller) popHistory() (string, bool) {
	if len(c.sess.History) == 0 {
		return "", false
	}
	last := c.sess.History[len(c.sess.History)-1]
	c.sess.History = c.sess.History[:len(c.sess.History)-1]
	c.sess.CurrentStep = last
	return last, true
}
