package controllers

import (
	"github.com/firelovers/storefront/app/models"
	"github.com/firelovers/storefront/app/services"
	"github.com/firelovers/storefront/pkg/ctx"
)

type AnalyticsController struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analytics: analytics}
}

// StoreView records a page view event.
func (ctl *AnalyticsController) StoreView(c *ctx.Context) {
	var in models.CreateViewInput
	if !c.BindJSON(&in) {
		return
	}
	view, err := ctl.analytics.RecordView(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(view)
}

// StoreAction records a user interaction event.
func (ctl *AnalyticsController) StoreAction(c *ctx.Context) {
	var in models.CreateActionInput
	if !c.BindJSON(&in) {
		return
	}
	action, err := ctl.analytics.RecordAction(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(action)
}

// StoreGoal records a conversion event.
func (ctl *AnalyticsController) StoreGoal(c *ctx.Context) {
	var in models.CreateGoalInput
	if !c.BindJSON(&in) {
		return
	}
	goal, err := ctl.analytics.RecordGoal(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(goal)
}

// IndexGoals lists all recorded goals.
func (ctl *AnalyticsController) IndexGoals(c *ctx.Context) {
	goals, err := ctl.analytics.Goals(c.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(goals)
}

// GoalDetails returns a goal with the converting visitor's full history.
func (ctl *AnalyticsController) GoalDetails(c *ctx.Context) {
	details, err := ctl.analytics.GoalDetails(c.Context(), c.Param("goalId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(details)
}
