package models

import "math"

// Progress returns the point-weighted completion percentage for a set of
// tasks, rounded up. Empty input and zero total points both yield 0.
// Never persisted; always recomputed from current task state.
func Progress(tasks []Task) int {
	var total, completed int

	for _, task := range tasks {
		total += task.Points
		if task.Completed {
			completed += task.Points
		}
	}

	if total == 0 {
		return 0
	}

	return int(math.Ceil(float64(completed) / float64(total) * 100))
}
