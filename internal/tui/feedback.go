package tui

// Feedback gives a cue for each kind of user action.
type Feedback interface {
	Navigate()
	Select()
	PageSwitch()
}

type beeper interface {
	Beep() error
}

// Bell rings the terminal bell for every cue. A terminal has one bell, so
// the three cues sound the same.
type Bell struct {
	out beeper
}

func NewBell(out beeper) *Bell {
	return &Bell{out: out}
}

func (b *Bell) Navigate()   { _ = b.out.Beep() }
func (b *Bell) Select()     { _ = b.out.Beep() }
func (b *Bell) PageSwitch() { _ = b.out.Beep() }

// Silent gives no feedback.
type Silent struct{}

func (Silent) Navigate()   {}
func (Silent) Select()     {}
func (Silent) PageSwitch() {}
