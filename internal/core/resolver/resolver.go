// Package resolver converts locally-typed clock times into absolute
// instants and places them among a day's existing duty-status logs:
// neighbor lookup, conflict detection and implied-duration computation.
//
// All operations are pure functions over their inputs. The only ambient
// dependency, the fallback timezone used when a tenant timezone cannot be
// resolved, is pinned explicitly on the Resolver so tests can control it.
package resolver

import (
	"errors"
	"fmt"
	"time"

	"github.com/fleetlog/go-hos-timeline/internal/core/constants"
	"github.com/fleetlog/go-hos-timeline/internal/util"
)

// ErrUnknownTimezone is returned by the strict resolution path when the
// tenant timezone cannot be loaded.
var ErrUnknownTimezone = errors.New("unknown timezone")

// Resolver resolves wall-clock times in a tenant timezone. The zero value
// is not usable; construct with NewResolver.
type Resolver struct {
	fallback *time.Location
}

// NewResolver creates a resolver that degrades to the given location when
// a tenant timezone cannot be loaded. Passing nil selects time.Local,
// matching the behavior of the surrounding application.
func NewResolver(fallback *time.Location) *Resolver {
	if fallback == nil {
		fallback = time.Local
	}
	return &Resolver{fallback: fallback}
}

// location resolves the tenant timezone, falling back rather than failing.
// Losing the ability to record an event is worse than recording it with an
// approximate offset, so the degraded path is a warning, not an error.
func (r *Resolver) location(timezone string) *time.Location {
	loc, degraded := util.LoadLocationOrFallback(timezone, r.fallback)
	if degraded && timezone != "" {
		util.LogWarnf("Unknown timezone %q, falling back to %s", timezone, r.fallback)
	}
	return loc
}

// ResolveTimestamp parses a clock string and resolves it against the
// calendar day of date as wall-clock time in the tenant timezone,
// returning an epoch-millisecond instant. An unknown timezone degrades to
// the resolver's fallback location; a malformed clock string is an error.
func (r *Resolver) ResolveTimestamp(clock string, date time.Time, timezone string) (int64, error) {
	return r.resolve(clock, date, r.location(timezone))
}

// ResolveTimestampStrict behaves like ResolveTimestamp but fails on an
// unknown timezone instead of degrading. The remote submission path uses
// this: a payload built against the wrong offset must not leave the client.
func (r *Resolver) ResolveTimestampStrict(clock string, date time.Time, timezone string) (int64, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTimezone, timezone)
	}
	return r.resolve(clock, date, loc)
}

func (r *Resolver) resolve(clock string, date time.Time, loc *time.Location) (int64, error) {
	hour, minute, err := ParseClockTime(clock)
	if err != nil {
		return 0, err
	}
	year, month, day := date.Date()
	resolved := time.Date(year, month, day, hour, minute, 0, 0, loc)
	return resolved.UnixMilli(), nil
}

// DayStart returns the epoch-millisecond start of the calendar day of date
// in the tenant timezone.
func (r *Resolver) DayStart(date time.Time, timezone string) int64 {
	loc := r.location(timezone)
	year, month, day := date.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc).UnixMilli()
}

// DayEnd returns 23:59:59.999 of the calendar day of date in the tenant
// timezone.
func (r *Resolver) DayEnd(date time.Time, timezone string) int64 {
	return r.DayStart(date, timezone) + constants.EndOfDayOffsetMs
}

// StartOfDayFor truncates an epoch-millisecond instant to the start of its
// calendar day in the tenant timezone.
func (r *Resolver) StartOfDayFor(ts int64, timezone string) int64 {
	loc := r.location(timezone)
	t := time.UnixMilli(ts).In(loc)
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc).UnixMilli()
}
