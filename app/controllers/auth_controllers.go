package controllers

import (
	"net/http"

	"github.com/zephyrlabs/zephyr/app/services"
	"github.com/zephyrlabs/zephyr/pkg/bind"
	"github.com/zephyrlabs/zephyr/pkg/identity"
	"github.com/zephyrlabs/zephyr/pkg/response"
)

// AuthController serves signup, login, and logout.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type signupInput struct {
	Username string `form:"username" validate:"required"`
	Email    string `form:"email"    validate:"required"`
	Password string `form:"password" validate:"required"`
}

type loginInput struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Signup handles POST /signup. On success the identity cookie is set so
// the browser lands back on the storefront already logged in.
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var in signupInput
	errs, err := bind.Form(r, &in)
	if err != nil || len(errs) > 0 {
		response.Text(w, http.StatusBadRequest, "Invalid or missing credentials")
		return
	}

	user, err := c.auth.Signup(in.Username, in.Email, in.Password)
	if err != nil {
		fail(w, r, err)
		return
	}

	identity.SetCookie(w, user.Username)
	response.Success(w, "User successfully created")
}

// Login handles POST /login. The response is the full user row — the shape
// the frontend expects from the legacy API.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if _, err := bind.Form(r, &in); err != nil {
		response.Internal(w)
		return
	}

	user, err := c.auth.Login(in.Username, in.Password)
	if err != nil {
		fail(w, r, err)
		return
	}

	identity.SetCookie(w, user.Username)
	response.JSON(w, user)
}

// Logout handles POST /logout. Always succeeds.
func (c *AuthController) Logout(w http.ResponseWriter, _ *http.Request) {
	identity.ClearCookie(w)
	response.Success(w, "User logged out")
}
