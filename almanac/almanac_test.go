package almanac

import (
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestElementalQuarter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rose.almanac")
	defer teardown()
	//
	cases := []struct {
		hour int
		want string
	}{
		{0, "Earth (12 AM - 6 AM)"},
		{5, "Earth (12 AM - 6 AM)"},
		{6, "Air (6 AM - 12 PM)"},
		{11, "Air (6 AM - 12 PM)"},
		{12, "Fire (12 PM - 6 PM)"},
		{17, "Fire (12 PM - 6 PM)"},
		{18, "Water (6 PM - 12 AM)"},
		{23, "Water (6 PM - 12 AM)"},
	}
	for _, c := range cases {
		at := time.Date(2025, time.March, 2, c.hour, 30, 0, 0, time.UTC)
		assert.Equal(t, c.want, ElementalQuarter(at), "hour %d", c.hour)
	}
}

func TestMoonPhaseCycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rose.almanac")
	defer teardown()
	//
	ref := time.Date(2000, time.January, 6, 12, 24, 0, 0, time.UTC)
	day := 24 * time.Hour
	cases := []struct {
		offset time.Duration
		want   string
	}{
		{0, "New Moon"},
		{3 * day, "Waxing Crescent"},
		{7*day + 12*time.Hour, "First Quarter"},
		{10 * day, "Waxing Gibbous"},
		{15 * day, "Full Moon"},
		{18 * day, "Waning Gibbous"},
		{22*day + 10*time.Hour, "Last Quarter"},
		{25 * day, "Waning Crescent"},
		{29 * day, "New Moon"},
	}
	for _, c := range cases {
		got := MoonPhase(ref.Add(c.offset))
		assert.Equal(t, c.want, got, "offset %v", c.offset)
	}
}

func TestMoonPhaseBeforeReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rose.almanac")
	defer teardown()
	//
	// one full lunation earlier is a new moon again
	before := referenceNewMoon.Add(-time.Duration(Lunation * 24 * float64(time.Hour)))
	assert.Equal(t, "New Moon", MoonPhase(before))
}

func TestPlanetaryHourDaytime(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rose.almanac")
	defer teardown()
	//
	// 2025-03-02 is a Sunday; 6:00-18:00 daylight gives one-hour planetary hours
	sunrise := time.Date(2025, time.March, 2, 6, 0, 0, 0, time.UTC)
	sunset := time.Date(2025, time.March, 2, 18, 0, 0, 0, time.UTC)
	//
	planet, err := PlanetaryHour(sunrise.Add(30*time.Minute), sunrise, sunset)
	assert.NoError(t, err)
	assert.Equal(t, "Sun", planet, "Sunday's first daylight hour is the Sun's")
	//
	planet, _ = PlanetaryHour(sunrise.Add(90*time.Minute), sunrise, sunset)
	assert.Equal(t, "Venus", planet)
	//
	planet, _ = PlanetaryHour(sunset.Add(-time.Minute), sunrise, sunset)
	assert.Equal(t, chaldeanOrder[11%7], planet, "twelfth daylight hour: 11 steps past Sun")
}

func TestPlanetaryHourNight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rose.almanac")
	defer teardown()
	//
	sunrise := time.Date(2025, time.March, 2, 6, 0, 0, 0, time.UTC)
	sunset := time.Date(2025, time.March, 2, 18, 0, 0, 0, time.UTC)
	//
	planet, err := PlanetaryHour(sunset.Add(30*time.Minute), sunrise, sunset)
	assert.NoError(t, err)
	// first night hour: 12 steps past the Sun in the Chaldean cycle
	assert.Equal(t, chaldeanOrder[12%7], planet)
}

func TestPlanetaryHourMissingSunTimes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rose.almanac")
	defer teardown()
	//
	now := time.Now()
	if _, err := PlanetaryHour(now, time.Time{}, time.Time{}); err == nil {
		t.Errorf("expected an error for missing sun times")
	}
	if _, err := PlanetaryHour(now, now.Add(time.Hour), now); err == nil {
		t.Errorf("expected an error for sunset before sunrise")
	}
}
