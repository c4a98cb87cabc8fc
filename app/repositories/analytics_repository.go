package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/firelovers/storefront/app/models"
	"github.com/firelovers/storefront/internal/store"
)

// AnalyticsRepository handles document-store operations for the three event
// collections: views, actions and goals.
type AnalyticsRepository struct {
	views   *store.Collection
	actions *store.Collection
	goals   *store.Collection
}

func NewAnalyticsRepository(s *store.Store) *AnalyticsRepository {
	return &AnalyticsRepository{
		views:   s.Collection("views"),
		actions: s.Collection("actions"),
		goals:   s.Collection("goals"),
	}
}

// CreateView persists a view event and fills in its generated id.
func (r *AnalyticsRepository) CreateView(ctx context.Context, v *models.View) error {
	v.ID = primitive.NewObjectID()
	_, err := r.views.Insert(ctx, v)
	return err
}

// CreateAction persists an action event and fills in its generated id.
func (r *AnalyticsRepository) CreateAction(ctx context.Context, a *models.Action) error {
	a.ID = primitive.NewObjectID()
	_, err := r.actions.Insert(ctx, a)
	return err
}

// CreateGoal persists a goal event and fills in its generated id.
func (r *AnalyticsRepository) CreateGoal(ctx context.Context, g *models.Goal) error {
	g.ID = primitive.NewObjectID()
	_, err := r.goals.Insert(ctx, g)
	return err
}

// AllGoals returns every recorded goal event.
func (r *AnalyticsRepository) AllGoals(ctx context.Context) ([]models.Goal, error) {
	var goals []models.Goal
	if err := r.goals.Find(ctx, bson.M{}, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// FindGoal looks up a single goal event by hex id.
func (r *AnalyticsRepository) FindGoal(ctx context.Context, id string) (models.Goal, error) {
	var g models.Goal
	err := r.goals.FindByID(ctx, id, &g)
	return g, err
}

// ViewsByVisitor returns every view recorded for a visitor.
func (r *AnalyticsRepository) ViewsByVisitor(ctx context.Context, visitor string) ([]models.View, error) {
	var views []models.View
	if err := r.views.Find(ctx, bson.M{"visitor": visitor}, &views); err != nil {
		return nil, err
	}
	return views, nil
}

// ActionsByVisitor returns every action recorded for a visitor.
func (r *AnalyticsRepository) ActionsByVisitor(ctx context.Context, visitor string) ([]models.Action, error) {
	var actions []models.Action
	if err := r.actions.Find(ctx, bson.M{"visitor": visitor}, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}
