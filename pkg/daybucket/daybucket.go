package daybucket

import (
	"errors"
	"time"
)

// A day runs from the cutoff hour to the next day's cutoff hour, so activity
// logged shortly after midnight still counts toward the evening before.
const (
	CutoffHour  = 4
	DefaultZone = "America/New_York"

	layout = "2006-01-02"
)

var ErrInvalidBucket = errors.New("bucket must be a YYYY-MM-DD date")

// Bucket is the calendar date identifying one non-midnight-aligned day window.
type Bucket string

func (b Bucket) String() string {
	return string(b)
}

// Parse validates raw as a bucket key (path params, query args).
func Parse(raw string) (Bucket, error) {
	t, err := time.Parse(layout, raw)
	if err != nil || t.Format(layout) != raw {
		return "", ErrInvalidBucket
	}
	return Bucket(raw), nil
}

// Resolver maps instants to buckets using a fixed reference timezone.
type Resolver struct {
	loc      *time.Location
	degraded bool
}

// NewResolver builds a resolver for the named zone. If the zone database is
// unavailable the resolver falls back to the process-local zone without the
// cutoff shift; Degraded reports that state.
func NewResolver(zone string) *Resolver {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return &Resolver{loc: time.Local, degraded: true}
	}
	return &Resolver{loc: loc}
}

// Degraded reports whether the reference zone failed to load and buckets are
// being derived from the local calendar date instead.
func (r *Resolver) Degraded() bool {
	return r.degraded
}

// BucketFor returns the bucket the instant belongs to. Instants before the
// cutoff hour belong to the previous calendar date; the cutoff instant itself
// starts the new day. The conversion is zone-aware, so DST days still map
// every instant to exactly one bucket.
func (r *Resolver) BucketFor(t time.Time) Bucket {
	local := t.In(r.loc)
	if !r.degraded && local.Hour() < CutoffHour {
		local = local.AddDate(0, 0, -1)
	}
	return Bucket(local.Format(layout))
}
