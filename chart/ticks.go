package chart

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

const DEFAULT_TICK_COUNT = 10

// Thresholds between the 1, 2, 5 and 10 step factors.
var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickSpec returns integer tick indices i1..i2 and the increment between them. A negative increment means the step is
// 1/-inc, which keeps small steps exact (0.1 is represented as -10 rather than 0.1000000001).
func tickSpec(start, stop float64, count int) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, float64(count))
	power := math.Floor(math.Log10(step))
	errorRatio := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case errorRatio >= e10:
		factor = 10
	case errorRatio >= e5:
		factor = 5
	case errorRatio >= e2:
		factor = 2
	}

	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = math.Round(start * inc)
		i2 = math.Round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = math.Round(start / inc)
		i2 = math.Round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	return i1, i2, inc
}

// tickIncrement is the increment tickSpec would pick, or 0 when there is nothing to step over.
func tickIncrement(start, stop float64, count int) float64 {
	if !(stop > start) || count <= 0 {
		return 0
	}
	_, _, inc := tickSpec(start, stop, count)
	if math.IsNaN(inc) || math.IsInf(inc, 0) {
		return 0
	}
	return inc
}

// tickStep is tickIncrement converted back into a plain step value.
func tickStep(start, stop float64, count int) float64 {
	inc := tickIncrement(start, stop, count)
	if inc < 0 {
		return 1 / -inc
	}
	return inc
}

// linearTicks returns roughly count round values between start and stop inclusive.
func linearTicks(start, stop float64, count int) []float64 {
	if count <= 0 || math.IsNaN(start) || math.IsNaN(stop) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	inc := tickIncrement(start, stop, count)
	if inc == 0 {
		return nil
	}
	i1, i2, _ := tickSpec(start, stop, count)
	if !(i2 >= i1) {
		return nil
	}

	n := int(i2-i1) + 1
	ticks := make([]float64, n)
	for i := 0; i < n; i++ {
		if inc < 0 {
			ticks[i] = (i1 + float64(i)) / -inc
		} else {
			ticks[i] = (i1 + float64(i)) * inc
		}
	}
	if reverse {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			ticks[i], ticks[j] = ticks[j], ticks[i]
		}
	}
	return ticks
}

// niceDomain widens [start, stop] outwards until both ends land on the tick increment.
func niceDomain(start, stop float64, count int) (float64, float64) {
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	var prestep float64
loop:
	for i := 0; i < 10; i++ {
		step := tickIncrement(start, stop, count)
		if step == prestep {
			break
		}
		switch {
		case step > 0:
			start = math.Floor(start/step) * step
			stop = math.Ceil(stop/step) * step
		case step < 0:
			start = math.Ceil(start*step) / step
			stop = math.Floor(stop*step) / step
		default:
			break loop
		}
		prestep = step
	}

	if reverse {
		return stop, start
	}
	return start, stop
}

// linearTickFormat returns a formatter with just enough decimals for the tick step, grouping thousands.
func linearTickFormat(start, stop float64, count int) func(float64) string {
	digits := 0
	if step := math.Abs(tickStep(math.Min(start, stop), math.Max(start, stop), count)); step > 0 && step < 1 {
		digits = int(math.Max(0, math.Ceil(-math.Log10(step)-1e-9)))
	}
	return func(v float64) string {
		return humanize.CommafWithDigits(v, digits)
	}
}

type timeUnit int

const (
	unitSecond timeUnit = iota
	unitMinute
	unitHour
	unitDay
	unitWeek
	unitMonth
	unitYear
)

const (
	durationDay   = 24 * time.Hour
	durationWeek  = 7 * durationDay
	durationMonth = 30 * durationDay
	durationYear  = 365 * durationDay
)

type timeInterval struct {
	unit     timeUnit
	step     int
	duration time.Duration
}

// Candidate intervals for the time axis, shortest first.
var timeIntervals = []timeInterval{
	{unitSecond, 1, time.Second},
	{unitSecond, 5, 5 * time.Second},
	{unitSecond, 15, 15 * time.Second},
	{unitSecond, 30, 30 * time.Second},
	{unitMinute, 1, time.Minute},
	{unitMinute, 5, 5 * time.Minute},
	{unitMinute, 15, 15 * time.Minute},
	{unitMinute, 30, 30 * time.Minute},
	{unitHour, 1, time.Hour},
	{unitHour, 3, 3 * time.Hour},
	{unitHour, 6, 6 * time.Hour},
	{unitHour, 12, 12 * time.Hour},
	{unitDay, 1, durationDay},
	{unitDay, 2, 2 * durationDay},
	{unitWeek, 1, durationWeek},
	{unitMonth, 1, durationMonth},
	{unitMonth, 3, 3 * durationMonth},
	{unitYear, 1, durationYear},
}

// pickTimeInterval chooses the interval whose duration is closest to span/count. ok is false when the span is below
// one second and the caller should fall back to millisecond ticks.
func pickTimeInterval(start, stop time.Time, count int) (interval timeInterval, ok bool) {
	target := time.Duration(math.Abs(float64(stop.Sub(start))) / float64(count))

	i := 0
	for i < len(timeIntervals) && timeIntervals[i].duration <= target {
		i++
	}

	switch {
	case i == len(timeIntervals):
		years := tickStep(float64(start.UTC().Year()), float64(stop.UTC().Year()), count)
		return timeInterval{unitYear, int(math.Max(1, math.Round(years))), durationYear}, true
	case i == 0:
		return timeInterval{}, false
	}

	prev, next := timeIntervals[i-1], timeIntervals[i]
	if float64(target)/float64(prev.duration) < float64(next.duration)/float64(target) {
		return prev, true
	}
	return next, true
}

// floor truncates t to the start of its interval unit in UTC.
func (ti timeInterval) floor(t time.Time) time.Time {
	t = t.UTC()
	switch ti.unit {
	case unitSecond:
		return t.Truncate(time.Second)
	case unitMinute:
		return t.Truncate(time.Minute)
	case unitHour:
		return t.Truncate(time.Hour)
	case unitDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	case unitWeek:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return day.AddDate(0, 0, -int(day.Weekday()))
	case unitMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	}
}

// next advances t by one base unit.
func (ti timeInterval) next(t time.Time) time.Time {
	switch ti.unit {
	case unitSecond:
		return t.Add(time.Second)
	case unitMinute:
		return t.Add(time.Minute)
	case unitHour:
		return t.Add(time.Hour)
	case unitDay:
		return t.AddDate(0, 0, 1)
	case unitWeek:
		return t.AddDate(0, 0, 7)
	case unitMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(1, 0, 0)
	}
}

// matches reports whether a floored t falls on the interval's step, e.g. every 15th second or every third month.
func (ti timeInterval) matches(t time.Time) bool {
	if ti.step <= 1 {
		return true
	}
	switch ti.unit {
	case unitSecond:
		return t.Second()%ti.step == 0
	case unitMinute:
		return t.Minute()%ti.step == 0
	case unitHour:
		return t.Hour()%ti.step == 0
	case unitDay:
		return (t.Day()-1)%ti.step == 0
	case unitMonth:
		return (int(t.Month())-1)%ti.step == 0
	case unitYear:
		return t.Year()%ti.step == 0
	default:
		return true
	}
}

const maxTimeTicks = 1000

// timeTicks returns interval-aligned times within [start, stop].
func timeTicks(start, stop time.Time, count int) []time.Time {
	if count <= 0 {
		return nil
	}
	if stop.Before(start) {
		start, stop = stop, start
	}
	if start.Equal(stop) {
		return []time.Time{start.UTC()}
	}

	interval, ok := pickTimeInterval(start, stop, count)
	if !ok {
		// Sub-second spans step in whole milliseconds
		step := int64(math.Max(1, math.Round(tickStep(float64(start.UnixMilli()), float64(stop.UnixMilli()), count))))
		var ticks []time.Time
		first := int64(math.Ceil(float64(start.UnixMilli())/float64(step))) * step
		for ms := first; ms <= stop.UnixMilli() && len(ticks) < maxTimeTicks; ms += step {
			ticks = append(ticks, time.UnixMilli(ms).UTC())
		}
		return ticks
	}

	var ticks []time.Time
	for t := interval.floor(start); !t.After(stop) && len(ticks) < maxTimeTicks; t = interval.next(t) {
		if t.Before(start) || !interval.matches(t) {
			continue
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// timeTickLabel picks a layout from the coarsest unit t is not aligned to, so midnight shows the day and the
// first of January shows the year.
func timeTickLabel(t time.Time) string {
	t = t.UTC()
	switch {
	case t.Nanosecond() != 0:
		return t.Format(".000")
	case t.Second() != 0:
		return t.Format(":05")
	case t.Minute() != 0:
		return t.Format("15:04")
	case t.Hour() != 0:
		return t.Format("03 PM")
	case t.Day() != 1:
		if t.Weekday() != time.Sunday {
			return t.Format("Mon 02")
		}
		return t.Format("Jan 02")
	case t.Month() != time.January:
		return t.Format("January")
	default:
		return t.Format("2006")
	}
}
