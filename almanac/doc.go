/*
Package almanac computes the time-based context shown on the planner page:
elemental quarter of the day, moon phase, and ruling planetary hour.

All computations are deliberate heuristics, not ephemeris math. The moon
phase is a fixed-lunation cycle counted from a reference new moon; planetary
hours divide daylight and night into twelve equal hours each. Good enough for
a planner page, useless for navigation.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © the rosesigil authors
*/
package almanac

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rose.almanac'
func tracer() tracing.Trace {
	return tracing.Select("rose.almanac")
}

// errAlmanac produces user level errors for almanac computations.
func errAlmanac(message string) error {
	return fmt.Errorf("almanac: %s", message)
}
