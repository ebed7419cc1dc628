package runner

import "github.com/vovakirdan/tui-runner/internal/config"

// Body is the player's vertical state machine.
// Y is 0 on the ground and negative while airborne; it never goes positive.
type Body struct {
	Y        float64
	VY       float64
	Airborne bool
	Ducking  bool

	canJump bool // re-armed on landing, one jump per landing

	gravity       float64
	jumpVelocity  float64
	maxJumpHeight float64
}

func newBody(p config.Physics) Body {
	b := Body{
		gravity:       p.Gravity,
		jumpVelocity:  p.JumpVelocity,
		maxJumpHeight: p.MaxJumpHeight,
	}
	b.reset()
	return b
}

func (b *Body) reset() {
	b.Y = 0
	b.VY = 0
	b.Airborne = false
	b.Ducking = false
	b.canJump = true
}

// Jump starts a jump from the ground. It returns false, changing nothing,
// while airborne, ducking, or before the body has landed from the previous jump.
func (b *Body) Jump() bool {
	if b.Airborne || b.Ducking || !b.canJump {
		return false
	}
	b.VY = b.jumpVelocity
	b.Airborne = true
	b.canJump = false
	return true
}

// SetDuck changes the duck state. Ducking can only begin on the ground;
// standing up is always allowed. Reports whether the state changed.
func (b *Body) SetDuck(active bool) bool {
	if active && b.Airborne {
		return false
	}
	if b.Ducking == active {
		return false
	}
	b.Ducking = active
	return true
}

// integrate advances one physics step and reports whether the body landed.
func (b *Body) integrate() bool {
	if !b.Airborne {
		return false
	}

	b.VY += b.gravity
	b.Y += b.VY

	// Apex clamp gives the arc a flat top
	if b.maxJumpHeight > 0 && b.Y < -b.maxJumpHeight {
		b.Y = -b.maxJumpHeight
		if b.VY < 0 {
			b.VY = 0
		}
	}

	if b.Y >= 0 {
		b.Y = 0
		b.VY = 0
		b.Airborne = false
		b.canJump = true
		return true
	}
	return false
}
