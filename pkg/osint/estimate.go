package osint

import (
	"math"
	"time"
)

// Calibration of the cursor-to-time estimate. Cursors are not timestamps, but
// in observed data the value of cursor/1e9 advances with wall-clock time at a
// roughly constant rate. ReferenceUnix is the cursor-seconds value observed
// at ReferenceTime, and ScaleRatio converts elapsed cursor-seconds into real
// seconds. The constants are empirical fits and should not be re-derived.
const (
	ReferenceUnix int64   = 1_693_604_227
	ScaleRatio    float64 = 360000.0 / 377483.0

	cursorUnit int64 = 1_000_000_000
)

// ReferenceTime is the moment that corresponds to ReferenceUnix
var ReferenceTime = time.Date(2021, time.March, 7, 19, 54, 13, 0, time.UTC)

// EstimateTime approximates when a cursor was issued. The result is a
// heuristic and must be presented as an estimate.
//
// Every int64 input yields a defined result: the scaled offset is at most
// about 9e9 seconds, which time.Unix represents without overflow.
func EstimateTime(cursor int64) time.Time {
	delta := floorDiv(cursor, cursorUnit) - ReferenceUnix
	offset := ScaleRatio * float64(delta)

	secs, frac := math.Modf(offset)
	nanos := int64(math.Round(frac*1e6)) * 1000

	return time.Unix(ReferenceTime.Unix()+int64(secs), nanos).UTC()
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
