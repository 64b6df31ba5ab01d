// Package level derives the gamified tier and progress-bar fill from a
// cumulative point total. It never reads stored state: callers pass in the
// live-summed total.
package level

const (
	TierSize    = 4000
	MaxLevel    = 4
	SegmentSize = 200
	MaxSegments = 20
)

type Progress struct {
	Level           int `json:"level"`
	NextLevel       int `json:"next_level"`
	PointsIntoLevel int `json:"points_into_level"`
	PointsToNext    int `json:"points_to_next"`
	SegmentsFilled  int `json:"segments_filled"`
}

// ForTotal computes level progress for a cumulative total. At the max tier
// the display saturates: segments cap at MaxSegments and PointsToNext is 0.
func ForTotal(total int) Progress {
	if total < 0 {
		total = 0
	}
	lvl := total/TierSize + 1
	if lvl > MaxLevel {
		lvl = MaxLevel
	}
	into := total - (lvl-1)*TierSize
	segments := into / SegmentSize
	if segments > MaxSegments {
		segments = MaxSegments
	}
	next := lvl
	toNext := 0
	if lvl < MaxLevel {
		next = lvl + 1
		toNext = lvl*TierSize - total
	}
	return Progress{
		Level:           lvl,
		NextLevel:       next,
		PointsIntoLevel: into,
		PointsToNext:    toNext,
		SegmentsFilled:  segments,
	}
}
