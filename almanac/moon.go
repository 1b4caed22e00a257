package almanac

import "time"

// Lunation is the length of the synodic month in days.
const Lunation = 29.53058867

// referenceNewMoon is the new moon of January 2000, the anchor the phase
// fraction is counted from.
var referenceNewMoon = time.Date(2000, time.January, 6, 12, 24, 0, 0, time.UTC)

// MoonPhase names the moon phase at t using the fixed-lunation heuristic:
// the fraction of the current synodic month elapsed since the reference new
// moon selects one of the eight traditional phase names.
func MoonPhase(t time.Time) string {
	days := t.UTC().Sub(referenceNewMoon).Hours() / 24
	phase := mod1(days / Lunation)
	tracer().Debugf("moon phase fraction at %s is %.4f", t.Format(time.RFC3339), phase)
	switch {
	case phase < 0.03 || phase > 0.97:
		return "New Moon"
	case phase < 0.25:
		return "Waxing Crescent"
	case phase < 0.27:
		return "First Quarter"
	case phase < 0.50:
		return "Waxing Gibbous"
	case phase < 0.53:
		return "Full Moon"
	case phase < 0.75:
		return "Waning Gibbous"
	case phase < 0.77:
		return "Last Quarter"
	default:
		return "Waning Crescent"
	}
}

// mod1 wraps x into [0,1), also for negative x.
func mod1(x float64) float64 {
	x -= float64(int64(x))
	if x < 0 {
		x++
	}
	return x
}
