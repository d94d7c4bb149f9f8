package services

import (
	"lafamilia/models"
)

// Step is one stage of a Wizard. Steps with SubSteps are walked through in
// order before the next step; Validate receives the sub-step index.
type Step[S any] struct {
	Name     string
	SubSteps []string
	Validate func(state *S, subStep int) error
}

type position struct {
	step, sub int
}

// Wizard moves a cursor over a fixed, ordered list of steps. It holds no
// per-visitor state; callers persist the models.WizardPosition.
type Wizard[S any] struct {
	steps     []Step[S]
	positions []position
}

func NewWizard[S any](steps ...Step[S]) *Wizard[S] {
	w := &Wizard[S]{steps: steps}
	for i, st := range steps {
		if len(st.SubSteps) == 0 {
			w.positions = append(w.positions, position{i, 0})
			continue
		}
		for j := range st.SubSteps {
			w.positions = append(w.positions, position{i, j})
		}
	}
	return w
}

// index finds pos in the walk order. Unknown positions count as the first.
func (w *Wizard[S]) index(pos models.WizardPosition) int {
	for i, p := range w.positions {
		if p.step == pos.Step && p.sub == pos.SubStep {
			return i
		}
	}
	return 0
}

func (w *Wizard[S]) set(pos *models.WizardPosition, i int) {
	pos.Step = w.positions[i].step
	pos.SubStep = w.positions[i].sub
}

// Next validates the current position and advances one position on success.
// On the last position it does nothing.
func (w *Wizard[S]) Next(state *S, pos *models.WizardPosition) error {
	if pos.Submitted {
		return models.NewStateError("This order has already been submitted.")
	}
	i := w.index(*pos)
	if i == len(w.positions)-1 {
		return nil
	}
	cur := w.positions[i]
	if v := w.steps[cur.step].Validate; v != nil {
		if err := v(state, cur.sub); err != nil {
			return err
		}
	}
	w.set(pos, i+1)
	return nil
}

// Previous goes back one position without validating. On the first
// position it does nothing.
func (w *Wizard[S]) Previous(pos *models.WizardPosition) error {
	if pos.Submitted {
		return models.NewStateError("This order has already been submitted.")
	}
	if i := w.index(*pos); i > 0 {
		w.set(pos, i-1)
	}
	return nil
}

// Goto jumps to the first sub-step of the named step.
func (w *Wizard[S]) Goto(pos *models.WizardPosition, name string) {
	for i, st := range w.steps {
		if st.Name == name {
			pos.Step = i
			pos.SubStep = 0
			return
		}
	}
}

func (w *Wizard[S]) IsLast(pos models.WizardPosition) bool {
	return w.index(pos) == len(w.positions)-1
}

// Labels names the step and sub-step at pos.
func (w *Wizard[S]) Labels(pos models.WizardPosition) (string, string) {
	p := w.positions[w.index(pos)]
	st := w.steps[p.step]
	if len(st.SubSteps) == 0 {
		return st.Name, ""
	}
	return st.Name, st.SubSteps[p.sub]
}

// ValidateAll runs every validator up to, but excluding, the last position.
func (w *Wizard[S]) ValidateAll(state *S) error {
	for _, p := range w.positions[:len(w.positions)-1] {
		if v := w.steps[p.step].Validate; v != nil {
			if err := v(state, p.sub); err != nil {
				return err
			}
		}
	}
	return nil
}
