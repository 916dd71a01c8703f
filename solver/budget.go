package solver

import (
	"errors"
	"time"
)

//ErrBudgetExceeded reports that a solve call ran out of its step or
//time budget before reaching a verdict. It is a distinct outcome from
//Unsat: the engine proved nothing.
var ErrBudgetExceeded = errors.New("solve budget exceeded")

//Budget bounds a solve call. Zero values mean unlimited. The engines
//consume it cooperatively between discrete steps (one variable
//elimination, one decision or propagation, one resolvent); there is
//no asynchronous preemption. A Budget carries its consumed-step count,
//so each run needs a fresh one; sharing a Budget across consecutive
//runs makes them draw on the same allowance.
type Budget struct {
	MaxSteps int64
	Timeout  time.Duration

	steps    int64
	deadline time.Time
}

//Steps returns the number of steps consumed so far.
func (b *Budget) Steps() int64 {
	if b == nil {
		return 0
	}
	return b.steps
}

//step consumes one unit of budget and reports ErrBudgetExceeded once
//the allowance runs out.
func (b *Budget) step() error {
	if b == nil {
		return nil
	}
	b.steps++
	if b.MaxSteps > 0 && b.steps > b.MaxSteps {
		return ErrBudgetExceeded
	}
	if b.Timeout > 0 {
		if b.deadline.IsZero() {
			b.deadline = time.Now().Add(b.Timeout)
		} else if time.Now().After(b.deadline) {
			return ErrBudgetExceeded
		}
	}
	return nil
}
