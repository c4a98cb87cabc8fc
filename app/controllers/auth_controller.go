package controllers

import (
	"github.com/firelovers/storefront/app/models"
	"github.com/firelovers/storefront/app/services"
	"github.com/firelovers/storefront/pkg/auth"
	"github.com/firelovers/storefront/pkg/ctx"
)

type AuthController struct {
	users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{users: users}
}

// Login exchanges credentials for a signed token.
func (ctl *AuthController) Login(c *ctx.Context) {
	var in models.LoginInput
	if !c.BindJSON(&in) {
		return
	}
	token, user, err := ctl.users.Login(in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(map[string]any{
		"token": token,
		"user":  user.Public(),
	})
}

// Me returns the account behind the presented token.
func (ctl *AuthController) Me(c *ctx.Context) {
	claims, ok := auth.ClaimsFromCtx(c.Context())
	if !ok {
		c.Unauthorized()
		return
	}
	user, err := ctl.users.Find(claims.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(user.Public())
}
