package almanac

import "time"

// ElementalQuarter names the elemental quarter of the day containing t:
// Earth rules midnight to 6 AM, Air the morning, Fire the afternoon, and
// Water the evening. The wall-clock hour in t's location decides; convert t
// before calling if a different clock matters.
func ElementalQuarter(t time.Time) string {
	switch hour := t.Hour(); {
	case hour < 6:
		return "Earth (12 AM - 6 AM)"
	case hour < 12:
		return "Air (6 AM - 12 PM)"
	case hour < 18:
		return "Fire (12 PM - 6 PM)"
	default:
		return "Water (6 PM - 12 AM)"
	}
}
