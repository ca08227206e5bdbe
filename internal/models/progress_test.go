package models

import "testing"

func TestProgress_EmptyTaskList(t *testing.T) {
	if got := Progress(nil); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := Progress([]Task{}); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestProgress_NothingCompleted(t *testing.T) {
	tasks := []Task{{Points: 5, Completed: false}}

	if got := Progress(tasks); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestProgress_PointWeighted(t *testing.T) {
	cases := []struct {
		name  string
		tasks []Task
		want  int
	}{
		{
			name: "half by points",
			tasks: []Task{
				{Points: 5, Completed: true},
				{Points: 5, Completed: false},
			},
			want: 50,
		},
		{
			name: "small task done in heavy feature",
			tasks: []Task{
				{Points: 1, Completed: true},
				{Points: 9, Completed: false},
			},
			want: 10,
		},
		{
			name: "rounds up",
			tasks: []Task{
				{Points: 1, Completed: true},
				{Points: 1, Completed: false},
				{Points: 1, Completed: false},
			},
			want: 34,
		},
		{
			name: "all complete",
			tasks: []Task{
				{Points: 3, Completed: true},
				{Points: 7, Completed: true},
			},
			want: 100,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Progress(tc.tasks); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestTaskProgress_Binary(t *testing.T) {
	if got := (Task{Completed: true, Points: 3}).Progress(); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
	if got := (Task{Completed: false, Points: 3}).Progress(); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestProjectProgress_FlattensAcrossFeatures(t *testing.T) {
	// One heavy unfinished feature plus trivial finished ones: progress must
	// be weighted by points, not averaged per feature.
	project := Project{
		Features: []Feature{
			{Tasks: []Task{{Points: 10, Completed: false}}},
			{Tasks: []Task{{Points: 1, Completed: true}}},
			{Tasks: []Task{{Points: 1, Completed: true}}},
		},
	}

	// ceil(2/12 * 100) = 17
	if got := project.Progress(); got != 17 {
		t.Fatalf("expected 17, got %d", got)
	}
}

func TestFeatureProgress_UsesOwnTasks(t *testing.T) {
	feature := Feature{
		Tasks: []Task{
			{Points: 2, Completed: true},
			{Points: 2, Completed: false},
		},
	}

	if got := feature.Progress(); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}
