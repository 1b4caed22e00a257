package almanac

import "time"

// chaldeanOrder is the planetary succession used for hour rulership. Each
// hour passes rule to the next planet in this cycle.
var chaldeanOrder = []string{"Sun", "Venus", "Mercury", "Moon", "Saturn", "Jupiter", "Mars"}

// dayRuler is the planet ruling the first daylight hour of each weekday.
var dayRuler = map[time.Weekday]string{
	time.Sunday:    "Sun",
	time.Monday:    "Moon",
	time.Tuesday:   "Mars",
	time.Wednesday: "Mercury",
	time.Thursday:  "Jupiter",
	time.Friday:    "Venus",
	time.Saturday:  "Saturn",
}

// PlanetaryHour names the planet ruling the hour containing now.
//
// Daylight between sunrise and sunset is divided into twelve equal hours, as
// is the night from sunset to the next sunrise. The first daylight hour is
// ruled by the weekday's ruler; rule then passes through the Chaldean order,
// with the first night hour twelve steps past the day ruler.
//
// sunrise and sunset must belong to now's day and satisfy sunrise < sunset;
// otherwise an error is returned and callers fall back to an "unavailable"
// display.
func PlanetaryHour(now, sunrise, sunset time.Time) (string, error) {
	if sunrise.IsZero() || sunset.IsZero() {
		return "", errAlmanac("sun times missing")
	}
	if !sunrise.Before(sunset) {
		return "", errAlmanac("sunrise must precede sunset")
	}
	start := indexOf(dayRuler[now.Weekday()])
	var hour int
	if !now.Before(sunrise) && now.Before(sunset) {
		dayHour := sunset.Sub(sunrise) / 12
		hour = int(now.Sub(sunrise) / dayHour)
	} else {
		nightHour := sunrise.Add(24 * time.Hour).Sub(sunset) / 12
		hour = 12 + int(now.Sub(sunset)/nightHour)
	}
	planet := chaldeanOrder[mod(start+hour, len(chaldeanOrder))]
	tracer().Debugf("hour %d after %s ruler: %s", hour, now.Weekday(), planet)
	return planet, nil
}

func indexOf(planet string) int {
	for i, p := range chaldeanOrder {
		if p == planet {
			return i
		}
	}
	return 0
}

// mod is the remainder wrapped into [0,n), also for negative x.
func mod(x, n int) int {
	return ((x % n) + n) % n
}
