package scene

// Phase is the reveal state of the scene.
type Phase int

const (
	// Idle: button shown, content hidden, no confetti.
	Idle Phase = iota
	// Bursting: content shown, confetti falling.
	Bursting
	// Settled: content shown, confetti cleared. Terminal.
	Settled
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Bursting:
		return "revealed+bursting"
	case Settled:
		return "revealed+settled"
	}
	return "unknown"
}

// Revealed reports whether the message and garden are visible.
func (p Phase) Revealed() bool {
	return p != Idle
}

// EffectActive reports whether the confetti batch is live.
func (p Phase) EffectActive() bool {
	return p == Bursting
}

// Reveal is the one-shot state machine behind the button.
type Reveal struct {
	phase Phase
}

// Phase returns the current phase.
func (r *Reveal) Phase() Phase {
	return r.phase
}

// Begin moves Idle to Bursting. It returns false from any other phase.
func (r *Reveal) Begin() bool {
	if r.phase != Idle {
		return false
	}
	r.phase = Bursting
	return true
}

// Settle moves Bursting to Settled. It returns false from any other phase.
func (r *Reveal) Settle() bool {
	if r.phase != Bursting {
		return false
	}
	r.phase = Settled
	return true
}
