package controllers

import (
	"net/http"

	"github.com/firelovers/storefront/app/models"
	"github.com/firelovers/storefront/app/services"
	"github.com/firelovers/storefront/pkg/ctx"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// Index lists all users.
func (ctl *UserController) Index(c *ctx.Context) {
	users, err := ctl.users.All()
	if err != nil {
		fail(c, err)
		return
	}
	public := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	c.Success(public)
}

// Store registers a new user.
func (ctl *UserController) Store(c *ctx.Context) {
	var in models.CreateUserInput
	if !c.BindJSON(&in) {
		return
	}
	user, err := ctl.users.Create(in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(user.Public())
}

// Show returns one user by id.
func (ctl *UserController) Show(c *ctx.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	user, err := ctl.users.Find(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(user.Public())
}

// Update replaces all mutable fields of a user.
func (ctl *UserController) Update(c *ctx.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var in models.CreateUserInput
	if !c.BindJSON(&in) {
		return
	}
	user, err := ctl.users.Update(id, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(user.Public())
}

// Patch updates only the provided fields of a user.
func (ctl *UserController) Patch(c *ctx.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var in models.PatchUserInput
	if !c.BindJSON(&in) {
		return
	}
	user, err := ctl.users.Patch(id, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(user.Public())
}

// Destroy deletes a user.
func (ctl *UserController) Destroy(c *ctx.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ctl.users.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
