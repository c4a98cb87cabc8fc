// Package controllers translates HTTP requests into service calls and
// service results into response envelopes.
package controllers

import (
	"errors"
	"net/http"

	"github.com/firelovers/storefront/app/services"
	"github.com/firelovers/storefront/internal/store"
	"github.com/firelovers/storefront/pkg/auth"
	"github.com/firelovers/storefront/pkg/ctx"
	"github.com/firelovers/storefront/pkg/logger"
)

// fail maps domain errors onto HTTP statuses. Anything unrecognized is a 500
// with the detail kept out of the response body.
func fail(c *ctx.Context, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		c.Error(http.StatusBadRequest, "invalid id")
	case errors.Is(err, store.ErrNotFound):
		c.NotFound()
	case errors.Is(err, services.ErrInvalidReference):
		c.Error(http.StatusBadRequest, "referenced entity does not exist")
	case errors.Is(err, services.ErrEmptyPatch):
		c.Error(http.StatusBadRequest, "no fields to update")
	case errors.Is(err, services.ErrEmailTaken):
		c.Error(http.StatusConflict, "email already in use")
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.Unauthorized("invalid credentials")
	case errors.Is(err, services.ErrUpstream):
		c.Error(http.StatusInternalServerError, "upstream service unavailable")
	default:
		logger.WithCtx(c.Context()).Error("request failed", "error", err)
		c.Error(http.StatusInternalServerError, "internal server error")
	}
}
