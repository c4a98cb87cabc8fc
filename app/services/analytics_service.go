package services

import (
	"context"
	"time"

	"github.com/firelovers/storefront/app/models"
)

// AnalyticsStore is the slice of the analytics repository the service
// depends on.
type AnalyticsStore interface {
	CreateView(ctx context.Context, v *models.View) error
	CreateAction(ctx context.Context, a *models.Action) error
	CreateGoal(ctx context.Context, g *models.Goal) error
	AllGoals(ctx context.Context) ([]models.Goal, error)
	FindGoal(ctx context.Context, id string) (models.Goal, error)
	ViewsByVisitor(ctx context.Context, visitor string) ([]models.View, error)
	ActionsByVisitor(ctx context.Context, visitor string) ([]models.Action, error)
}

// AnalyticsService records visitor events and assembles the goal-details
// join.
type AnalyticsService struct {
	store AnalyticsStore
}

func NewAnalyticsService(store AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// RecordView stores a page view. A missing timestamp defaults to now.
func (s *AnalyticsService) RecordView(ctx context.Context, in models.CreateViewInput) (models.View, error) {
	view := models.View{
		Source:    in.Source,
		URL:       in.URL,
		Visitor:   in.Visitor,
		CreatedAt: eventTime(in.CreatedAt),
		Meta:      in.Meta,
	}
	if err := s.store.CreateView(ctx, &view); err != nil {
		return models.View{}, err
	}
	return view, nil
}

// RecordAction stores a user interaction. A missing timestamp defaults to now.
func (s *AnalyticsService) RecordAction(ctx context.Context, in models.CreateActionInput) (models.Action, error) {
	action := models.Action{
		Source:    in.Source,
		URL:       in.URL,
		Action:    in.Action,
		Visitor:   in.Visitor,
		CreatedAt: eventTime(in.CreatedAt),
		Meta:      in.Meta,
	}
	if err := s.store.CreateAction(ctx, &action); err != nil {
		return models.Action{}, err
	}
	return action, nil
}

// RecordGoal stores a conversion. A missing timestamp defaults to now.
func (s *AnalyticsService) RecordGoal(ctx context.Context, in models.CreateGoalInput) (models.Goal, error) {
	goal := models.Goal{
		Source:    in.Source,
		URL:       in.URL,
		Goal:      in.Goal,
		Visitor:   in.Visitor,
		CreatedAt: eventTime(in.CreatedAt),
		Meta:      in.Meta,
	}
	if err := s.store.CreateGoal(ctx, &goal); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

// Goals lists every recorded conversion.
func (s *AnalyticsService) Goals(ctx context.Context) ([]models.Goal, error) {
	return s.store.AllGoals(ctx)
}

// GoalDetails returns a goal together with the complete view and action
// history of the visitor who converted.
func (s *AnalyticsService) GoalDetails(ctx context.Context, goalID string) (models.GoalDetails, error) {
	goal, err := s.store.FindGoal(ctx, goalID)
	if err != nil {
		return models.GoalDetails{}, err
	}

	views, err := s.store.ViewsByVisitor(ctx, goal.Visitor)
	if err != nil {
		return models.GoalDetails{}, err
	}
	actions, err := s.store.ActionsByVisitor(ctx, goal.Visitor)
	if err != nil {
		return models.GoalDetails{}, err
	}
	if views == nil {
		views = []models.View{}
	}
	if actions == nil {
		actions = []models.Action{}
	}
	return models.GoalDetails{Goal: goal, Views: views, Actions: actions}, nil
}

func eventTime(t models.FlexTime) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.Time
}
