package sheet

// Task identifies one run of the spring animation. The zero Task is never
// active.
type Task uint64

// Animation owns the single active spring task of a sheet. Starting a new
// task or cancelling invalidates every handle issued before.
type Animation struct {
	integrator Integrator
	active     Task
	last       Task
	target     float64
}

// NewAnimation returns an idle animation driven by integrator.
func NewAnimation(integrator Integrator) *Animation {
	if integrator == nil {
		integrator = LinearSpring{}
	}
	return &Animation{integrator: integrator}
}

// Start replaces any running task with a new one heading for target.
func (a *Animation) Start(target float64) Task {
	a.last++
	a.active = a.last
	a.target = target
	a.integrator.Reset()
	return a.active
}

// Cancel stops the running task, if any.
func (a *Animation) Cancel() {
	a.active = 0
}

// Active returns the running task, or zero when idle.
func (a *Animation) Active() Task {
	return a.active
}

// Target returns the destination of the most recent task.
func (a *Animation) Target() float64 {
	return a.target
}

// Step advances task by one frame from offset. ok is false when task is no
// longer the running one; the offset must then be left alone. When more is
// false the task has finished and is no longer active.
func (a *Animation) Step(task Task, offset float64) (next float64, more, ok bool) {
	if task == 0 || task != a.active {
		return offset, false, false
	}
	next, settled := a.integrator.Step(offset, a.target)
	if settled {
		a.active = 0
		return next, false, true
	}
	return next, true, true
}
