package trace

import (
	"fmt"

	"github.com/san-kum/dynvec/internal/vector"
)

// Apply performs a on v and returns the resulting step. A rejected
// operation leaves v unchanged and carries the error text in Step.Err.
func Apply(v *vector.Vector[int], a Action) Step {
	size, capBefore := v.Size(), v.Capacity()
	step := Step{Op: a.Op, Arg: a.Arg}

	var err error
	switch a.Op {
	case OpPushBack:
		v.PushBack(a.Arg)
	case OpPushFront:
		v.PushFront(a.Arg)
		step.Shifted = size
	case OpPopBack:
		_, err = v.PopBack()
	case OpPopFront:
		if _, err = v.PopFront(); err == nil {
			step.Shifted = size - 1
		}
	case OpRemoveAt:
		if err = v.RemoveAt(a.Arg); err == nil {
			step.Shifted = size - 1 - a.Arg
		}
	case OpClear:
		v.Clear()
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownOp, a.Op)
	}

	if err != nil {
		step.Err = err.Error()
	}
	if v.Capacity() > capBefore {
		step.Grew = true
		step.Copied = size
	}
	step.Size = v.Size()
	step.Capacity = v.Capacity()
	return step
}
