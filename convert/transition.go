package convert

import (
	"dtc/css"
	"dtc/tokens"
)

// Transition converts single transition shorthand. First time is the
// duration, second the delay (0ms when absent), timing function defaults to
// ease. One transitioned property name is allowed and ignored.
func Transition(raw string) (tokens.Transition, error) {
	if parts := css.SplitCommas(raw); len(parts) > 1 {
		return tokens.Transition{}, unsupported(tokens.KindTransition, raw, "multiple transitions")
	}

	var (
		times    []tokens.Duration
		timing   *tokens.CubicBezier
		property string
	)
	for _, c := range css.Components(raw) {
		switch {
		case c.IsNumeric():
			d, err := Time(c.Text)
			if err != nil {
				return tokens.Transition{}, wrap(tokens.KindTransition, raw, err, "time")
			}
			if len(times) == 2 {
				return tokens.Transition{}, fail(tokens.KindTransition, raw, "more than two times")
			}
			times = append(times, d)
		case c.IsFunction() || isTimingKeyword(c.Keyword()):
			if timing != nil {
				return tokens.Transition{}, fail(tokens.KindTransition, raw, "more than one timing function")
			}
			b, err := TimingFunction(c.Text)
			if err != nil {
				return tokens.Transition{}, wrap(tokens.KindTransition, raw, err, "timing function")
			}
			timing = &b
		case c.IsIdent() && property == "":
			property = c.Keyword()
		default:
			return tokens.Transition{}, fail(tokens.KindTransition, raw, "unexpected %q", c.Text)
		}
	}

	if len(times) == 0 {
		return tokens.Transition{}, fail(tokens.KindTransition, raw, "missing duration")
	}
	t := tokens.Transition{
		Duration:       times[0],
		Delay:          tokens.Duration{Value: 0, Unit: tokens.UnitMs},
		TimingFunction: timingPresets["ease"],
	}
	if len(times) == 2 {
		t.Delay = times[1]
	}
	if timing != nil {
		t.TimingFunction = *timing
	}
	return checked(t, raw)
}

func isTimingKeyword(keyword string) bool {
	_, ok := timingPresets[keyword]
	return ok
}
