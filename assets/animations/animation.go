package animations

// Animation steps through sheet indices First..Last, Step apart, holding each
// for Speed ticks. A Speed of 0 holds the first frame.
type Animation struct {
	First            int
	Last             int
	Step             int // how many indices do we move per frame
	Speed            int // ticks before next frame
	ticks            int
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

func NewAnimation(first, last, step, speed int) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First: first,
		Last:  last,
		Step:  step,
		Speed: speed,
		frame: first,
	}
}

func (a *Animation) Update() {
	if a.Speed <= 0 {
		return
	}
	a.ticks++
	if a.ticks < a.Speed {
		return
	}
	a.ticks = 0
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		if a.FreezeOnComplete {
			a.frame = a.Last
		} else {
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.ticks = 0
	a.Looped = false
}
