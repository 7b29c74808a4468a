package main

import "github.com/tanema/gween"

// Anim couples a running tween with whatever it drives.
type Anim struct {
	onChange func(float32)
	onFinish func()
}

// Tweens is the set of running animations, advanced once per frame and
// dropped as they finish.
type Tweens map[*gween.Tween]*Anim

func (ts Tweens) Add(t *gween.Tween, onChange func(float32)) *Anim {
	a := &Anim{onChange: onChange}
	ts[t] = a
	return a
}

func (ts Tweens) Update(dt float32) {
	for t, a := range ts {
		v, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(v)
		}
		if finished {
			if a.onFinish != nil {
				a.onFinish()
			}
			delete(ts, t)
		}
	}
}
