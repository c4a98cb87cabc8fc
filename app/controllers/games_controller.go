package controllers

import (
	"github.com/firelovers/storefront/app/services"
	"github.com/firelovers/storefront/pkg/ctx"
)

type GamesController struct {
	games *services.GamesService
}

func NewGamesController(games *services.GamesService) *GamesController {
	return &GamesController{games: games}
}

// Index relays the upstream free-to-play games list.
func (ctl *GamesController) Index(c *ctx.Context) {
	body, err := ctl.games.All(c.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(body)
}

// Show relays one upstream game by id.
func (ctl *GamesController) Show(c *ctx.Context) {
	body, err := ctl.games.Find(c.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(body)
}
