package entity

// Habit names as they appear in events, columns and JSON.
const (
	HabitSleep      = "sleep"
	HabitWater      = "water"
	HabitExercise   = "exercise"
	HabitNutrition  = "nutrition"
	HabitSteps      = "steps"
	HabitJournal    = "journal"
	HabitMeditation = "meditation"
	HabitMicrolearn = "microlearn"
	HabitReaction   = "reaction"
	HabitComment    = "comment"
	HabitShare      = "share"
	HabitGoalUpdate = "goal_update"
)

const (
	// PointsPerHabit is the flat value of every habit flag.
	PointsPerHabit = 100
	// BonusValue is awarded once per bucket when all 12 flags are true.
	BonusValue = 500
)

// HabitKind distinguishes how a habit's flag may legally change.
type HabitKind int

const (
	// KindValueDerived flags are recomputed from a daily-save snapshot.
	KindValueDerived HabitKind = iota
	// KindExplicit flags flip false->true once per bucket via a completion event.
	KindExplicit
	// KindStateRefresh flags track live source-of-truth rows and may flip both ways.
	KindStateRefresh
	// KindOneShot flags flip false->true once per bucket via an action event.
	KindOneShot
)

type Habit struct {
	Name string
	Kind HabitKind
}

// Catalogue lists every trackable habit. The first eight are daily habits,
// the last four are core habits.
var Catalogue = []Habit{
	{Name: HabitSleep, Kind: KindValueDerived},
	{Name: HabitWater, Kind: KindValueDerived},
	{Name: HabitExercise, Kind: KindValueDerived},
	{Name: HabitNutrition, Kind: KindValueDerived},
	{Name: HabitSteps, Kind: KindValueDerived},
	{Name: HabitJournal, Kind: KindValueDerived},
	{Name: HabitMeditation, Kind: KindExplicit},
	{Name: HabitMicrolearn, Kind: KindExplicit},
	{Name: HabitReaction, Kind: KindStateRefresh},
	{Name: HabitComment, Kind: KindStateRefresh},
	{Name: HabitShare, Kind: KindOneShot},
	{Name: HabitGoalUpdate, Kind: KindOneShot},
}

// HabitByName looks a habit up in the catalogue.
func HabitByName(name string) (Habit, bool) {
	for _, h := range Catalogue {
		if h.Name == name {
			return h, true
		}
	}
	return Habit{}, false
}

// DailyFlags holds the eight daily-habit completion flags: six derived from
// submitted values plus the two explicitly completed ones.
type DailyFlags struct {
	Sleep      bool `json:"sleep"`
	Water      bool `json:"water"`
	Exercise   bool `json:"exercise"`
	Nutrition  bool `json:"nutrition"`
	Steps      bool `json:"steps"`
	Journal    bool `json:"journal"`
	Meditation bool `json:"meditation"`
	Microlearn bool `json:"microlearn"`
}

func (f *DailyFlags) Get(name string) (bool, bool) {
	switch name {
	case HabitSleep:
		return f.Sleep, true
	case HabitWater:
		return f.Water, true
	case HabitExercise:
		return f.Exercise, true
	case HabitNutrition:
		return f.Nutrition, true
	case HabitSteps:
		return f.Steps, true
	case HabitJournal:
		return f.Journal, true
	case HabitMeditation:
		return f.Meditation, true
	case HabitMicrolearn:
		return f.Microlearn, true
	}
	return false, false
}

func (f *DailyFlags) Set(name string, v bool) bool {
	switch name {
	case HabitSleep:
		f.Sleep = v
	case HabitWater:
		f.Water = v
	case HabitExercise:
		f.Exercise = v
	case HabitNutrition:
		f.Nutrition = v
	case HabitSteps:
		f.Steps = v
	case HabitJournal:
		f.Journal = v
	case HabitMeditation:
		f.Meditation = v
	case HabitMicrolearn:
		f.Microlearn = v
	default:
		return false
	}
	return true
}

func (f DailyFlags) Count() int {
	count := 0
	for _, set := range []bool{f.Sleep, f.Water, f.Exercise, f.Nutrition, f.Steps, f.Journal, f.Meditation, f.Microlearn} {
		if set {
			count++
		}
	}
	return count
}

func (f DailyFlags) All() bool {
	return f.Count() == 8
}

// CoreFlags holds the four cross-cutting core-habit flags.
type CoreFlags struct {
	Reaction   bool `json:"reaction"`
	Comment    bool `json:"comment"`
	Share      bool `json:"share"`
	GoalUpdate bool `json:"goal_update"`
}

func (f *CoreFlags) Get(name string) (bool, bool) {
	switch name {
	case HabitReaction:
		return f.Reaction, true
	case HabitComment:
		return f.Comment, true
	case HabitShare:
		return f.Share, true
	case HabitGoalUpdate:
		return f.GoalUpdate, true
	}
	return false, false
}

func (f *CoreFlags) Set(name string, v bool) bool {
	switch name {
	case HabitReaction:
		f.Reaction = v
	case HabitComment:
		f.Comment = v
	case HabitShare:
		f.Share = v
	case HabitGoalUpdate:
		f.GoalUpdate = v
	default:
		return false
	}
	return true
}

func (f CoreFlags) Count() int {
	count := 0
	for _, set := range []bool{f.Reaction, f.Comment, f.Share, f.GoalUpdate} {
		if set {
			count++
		}
	}
	return count
}

func (f CoreFlags) All() bool {
	return f.Count() == 4
}

// ValueSnapshot says which of the six value-bearing daily habits carry a
// non-empty value in the incoming daily-save event.
type ValueSnapshot struct {
	Sleep     bool `json:"sleep"`
	Water     bool `json:"water"`
	Exercise  bool `json:"exercise"`
	Nutrition bool `json:"nutrition"`
	Steps     bool `json:"steps"`
	Journal   bool `json:"journal"`
}
