package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Stepper edits an integer value with -/+ buttons within [min, max]
type Stepper struct {
	value    int
	min      int
	max      int
	step     int
	onCommit func(int)

	valueLabel *widget.Label
	decBtn     *widget.Button
	incBtn     *widget.Button
	commitBtn  *widget.Button
	container  *fyne.Container
}

// NewStepper creates a stepper. value is clamped into range.
func NewStepper(value, min, max, step int, onCommit func(int)) *Stepper {
	if step <= 0 {
		step = 1
	}
	s := &Stepper{
		min:      min,
		max:      max,
		step:     step,
		onCommit: onCommit,
	}
	s.createUI()
	s.setValue(value)
	return s
}

func (s *Stepper) createUI() {
	s.valueLabel = widget.NewLabel("")
	s.valueLabel.Alignment = fyne.TextAlignCenter
	s.decBtn = widget.NewButton(IconMinus, s.Decrement)
	s.incBtn = widget.NewButton(IconPlus, s.Increment)
	s.commitBtn = widget.NewButton(IconCommit, s.Commit)
	s.commitBtn.Importance = widget.HighImportance

	s.container = container.NewBorder(nil, nil, s.decBtn, container.NewHBox(s.incBtn, s.commitBtn), s.valueLabel)
}

// Container returns the stepper's root object
func (s *Stepper) Container() *fyne.Container {
	return s.container
}

// Value returns the current value
func (s *Stepper) Value() int {
	return s.value
}

// Increment raises the value by one step
func (s *Stepper) Increment() {
	s.setValue(s.value + s.step)
}

// Decrement lowers the value by one step
func (s *Stepper) Decrement() {
	s.setValue(s.value - s.step)
}

// Commit passes the current value to the commit callback
func (s *Stepper) Commit() {
	if s.onCommit != nil {
		s.onCommit(s.value)
	}
}

func (s *Stepper) setValue(v int) {
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	s.value = v
	s.valueLabel.SetText(strconv.Itoa(v))

	if v <= s.min {
		s.decBtn.Disable()
	} else {
		s.decBtn.Enable()
	}
	if v >= s.max {
		s.incBtn.Disable()
	} else {
		s.incBtn.Enable()
	}
}
