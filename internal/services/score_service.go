package services

import (
	"context"

	"ritual/internal/domain"
)

// scoreServiceImpl implements the ScoreService interface
type scoreServiceImpl struct {
	tasks         TaskService
	pointsPerTask int
}

// NewScoreService creates a new ScoreService. A non-positive pointsPerTask
// falls back to domain.PointsPerTask.
func NewScoreService(tasks TaskService, pointsPerTask int) ScoreService {
	if pointsPerTask <= 0 {
		pointsPerTask = domain.PointsPerTask
	}
	return &scoreServiceImpl{tasks: tasks, pointsPerTask: pointsPerTask}
}

func (s *scoreServiceImpl) completedTasks(ctx context.Context) (int, error) {
	tasks, err := s.tasks.AllTasks(ctx)
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, task := range tasks {
		if task.Done {
			completed++
		}
	}
	return completed, nil
}

// TotalExperience is the number of done tasks across all dates times the
// points per task
func (s *scoreServiceImpl) TotalExperience(ctx context.Context) (int, error) {
	completed, err := s.completedTasks(ctx)
	if err != nil {
		return 0, err
	}
	return completed * s.pointsPerTask, nil
}

// Score returns the experience, level and progress to the next level
func (s *scoreServiceImpl) Score(ctx context.Context) (*domain.Score, error) {
	completed, err := s.completedTasks(ctx)
	if err != nil {
		return nil, err
	}
	score := domain.NewScore(completed, s.pointsPerTask)
	return &score, nil
}
