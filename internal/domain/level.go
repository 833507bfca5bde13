package domain

// PointsPerTask is the experience awarded for each completed task.
const PointsPerTask = 10

// Level is a named experience tier.
type Level struct {
	Name      string
	Threshold int
}

// Levels is the ascending level table. The first entry has threshold 0 so
// every experience total maps to a level.
var Levels = []Level{
	{Name: "Rookie", Threshold: 0},
	{Name: "Runner", Threshold: 200},
	{Name: "Striver", Threshold: 600},
	{Name: "Knight", Threshold: 1200},
	{Name: "Legend", Threshold: 2000},
}

// CurrentLevel returns the highest level whose threshold is <= xp.
func CurrentLevel(xp int) Level {
	current := Levels[0]
	for _, l := range Levels {
		if l.Threshold <= xp {
			current = l
		}
	}
	return current
}

// NextLevel returns the level after current and false when current is the top.
func NextLevel(current Level) (Level, bool) {
	for i, l := range Levels {
		if l == current && i+1 < len(Levels) {
			return Levels[i+1], true
		}
	}
	return Level{}, false
}

// ProgressToNext returns the percentage (0-100) of the way from the current
// level to the next one. It is 100 at the top level.
func ProgressToNext(xp int) int {
	current := CurrentLevel(xp)
	next, ok := NextLevel(current)
	if !ok {
		return 100
	}
	percent := 100 * (xp - current.Threshold) / (next.Threshold - current.Threshold)
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// Score is a snapshot of the user's experience.
type Score struct {
	CompletedTasks int
	Experience     int
	Level          Level
	Next           *Level
	Progress       int
}

// NewScore derives a Score from a completed-task count.
func NewScore(completed, pointsPerTask int) Score {
	xp := completed * pointsPerTask
	level := CurrentLevel(xp)
	score := Score{
		CompletedTasks: completed,
		Experience:     xp,
		Level:          level,
		Progress:       ProgressToNext(xp),
	}
	if next, ok := NextLevel(level); ok {
		score.Next = &next
	}
	return score
}
