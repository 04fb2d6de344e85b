package ui

import "wavegraph/internal/core"

// nextValue steps an int or choice control. Choices wrap around, ints stop at
// their bounds.
func nextValue(ctrl core.ParameterControl, current, direction int) (int, bool) {
	step := int(ctrl.Step)
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	switch ctrl.Type {
	case core.ParamTypeChoice:
		n := len(ctrl.Options)
		if n == 0 {
			return 0, false
		}
		return ((target % n) + n) % n, true
	case core.ParamTypeInt:
		if target < int(ctrl.Min) {
			target = int(ctrl.Min)
		}
		if ctrl.Max > ctrl.Min && target > int(ctrl.Max) {
			target = int(ctrl.Max)
		}
		return target, target != current
	}
	return 0, false
}
