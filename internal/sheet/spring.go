package sheet

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	// SpringStrength scales the remaining distance into per-step motion.
	SpringStrength = 0.1
	// SettleThreshold is the per-step motion at or below which a spring stops.
	SettleThreshold = 0.1

	maxDampedFrames = 600
)

// Integrator advances an offset one frame towards a target.
type Integrator interface {
	// Reset clears any state carried between steps of a previous animation.
	Reset()
	// Step returns the next offset and whether the animation has settled.
	Step(current, target float64) (next float64, settled bool)
}

// LinearSpring moves a fixed fraction of the remaining distance each frame.
// Velocity equals acceleration and nothing carries over between frames, so
// the motion decays geometrically and never lands exactly on target.
type LinearSpring struct{}

func (LinearSpring) Reset() {}

func (LinearSpring) Step(current, target float64) (float64, bool) {
	acceleration := (target - current) * SpringStrength
	velocity := acceleration
	return current + velocity, math.Abs(velocity) <= SettleThreshold
}

// DampedSpring is a second-order damped spring with persisted velocity.
type DampedSpring struct {
	spring   harmonica.Spring
	velocity float64
	frames   int
}

// NewDampedSpring builds a spring stepping at fps frames per second.
func NewDampedSpring(fps int, frequency, damping float64) *DampedSpring {
	return &DampedSpring{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

func (d *DampedSpring) Reset() {
	d.velocity = 0
	d.frames = 0
}

func (d *DampedSpring) Step(current, target float64) (float64, bool) {
	d.frames++
	if d.frames >= maxDampedFrames {
		d.velocity = 0
		return target, true
	}
	next, velocity := d.spring.Update(current, d.velocity, target)
	d.velocity = velocity
	settled := math.Abs(next-current) <= SettleThreshold && math.Abs(target-next) <= SettleThreshold
	if settled {
		d.velocity = 0
	}
	return next, settled
}
