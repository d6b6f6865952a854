package handler

import (
	"net/http"
	"strings"

	"late-rooms/internal/marketerrors"
	"late-rooms/internal/session"
	"late-rooms/services/common/helpers"
	"late-rooms/utils"

	"github.com/gin-gonic/gin"
)

// LoginPageHandler handles GET /login
func (h *MarketHandler) LoginPageHandler(c *gin.Context) {
	helpers.Render(c, http.StatusOK, "login.html", gin.H{
		"Title": "Sign In",
		"Form":  helpers.LoginForm{},
	})
}

// LoginHandler handles POST /login
func (h *MarketHandler) LoginHandler(c *gin.Context) {
	var form helpers.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderLogin(c, http.StatusBadRequest, form, helpers.HandleBindError("LoginHandler", err))
		return
	}
	form.Email = strings.TrimSpace(form.Email)

	auth, err := h.auth.SignIn(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		utils.Warn("LoginHandler: sign in failed", map[string]any{
			"handler": "LoginHandler",
			"error":   err.Error(),
		})
		h.renderLogin(c, http.StatusUnauthorized, form, marketerrors.UserMessage(err))
		return
	}

	if err := h.sessions.Create(c, session.Data{
		AccessToken:  auth.AccessToken,
		RefreshToken: auth.RefreshToken,
		ExpiresAt:    auth.ExpiresAt,
		User:         auth.User,
	}); err != nil {
		utils.Error("LoginHandler: failed to create session", map[string]any{"error": err.Error()})
		h.renderLogin(c, http.StatusInternalServerError, form, "Something went wrong. Please try again.")
		return
	}

	helpers.LogSuccess("LoginHandler", "user signed in", map[string]any{"user_id": auth.User.ID})
	utils.SeeOther(c, "/")
}

// SignupPageHandler handles GET /signup
func (h *MarketHandler) SignupPageHandler(c *gin.Context) {
	helpers.Render(c, http.StatusOK, "signup.html", gin.H{
		"Title": "Sign Up",
		"Form":  helpers.SignupForm{},
	})
}

// SignupHandler handles POST /signup
func (h *MarketHandler) SignupHandler(c *gin.Context) {
	var form helpers.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderSignup(c, http.StatusBadRequest, form, helpers.HandleBindError("SignupHandler", err))
		return
	}
	form.Email = strings.TrimSpace(form.Email)
	form.FullName = strings.TrimSpace(form.FullName)

	auth, err := h.auth.SignUp(c.Request.Context(), form.Email, form.Password, form.FullName)
	if err != nil {
		utils.Warn("SignupHandler: sign up failed", map[string]any{
			"handler": "SignupHandler",
			"error":   err.Error(),
		})
		h.renderSignup(c, http.StatusBadRequest, form, marketerrors.UserMessage(err))
		return
	}

	// projects with email confirmation enabled return no token until the address is confirmed
	if auth.AccessToken == "" {
		h.sessions.SetFlash(c, "Check your email to confirm your account, then sign in.")
		utils.SeeOther(c, "/")
		return
	}

	if err := h.sessions.Create(c, session.Data{
		AccessToken:  auth.AccessToken,
		RefreshToken: auth.RefreshToken,
		ExpiresAt:    auth.ExpiresAt,
		User:         auth.User,
	}); err != nil {
		utils.Error("SignupHandler: failed to create session", map[string]any{"error": err.Error()})
		h.renderSignup(c, http.StatusInternalServerError, form, "Something went wrong. Please try again.")
		return
	}

	helpers.LogSuccess("SignupHandler", "user signed up", map[string]any{"user_id": auth.User.ID})
	utils.SeeOther(c, "/")
}

// LogoutHandler handles POST /logout
func (h *MarketHandler) LogoutHandler(c *gin.Context) {
	if data, ok := session.FromContext(c); ok {
		if err := h.auth.SignOut(c.Request.Context(), data.AccessToken); err != nil {
			utils.Warn("LogoutHandler: backend sign out failed", map[string]any{
				"handler": "LogoutHandler",
				"user_id": data.User.ID,
				"error":   err.Error(),
			})
		}
	}
	h.sessions.Destroy(c)
	utils.SeeOther(c, "/")
}

func (h *MarketHandler) renderLogin(c *gin.Context, status int, form helpers.LoginForm, message string) {
	form.Password = ""
	helpers.Render(c, status, "login.html", gin.H{
		"Title": "Sign In",
		"Form":  form,
		"Error": message,
	})
}

func (h *MarketHandler) renderSignup(c *gin.Context, status int, form helpers.SignupForm, message string) {
	form.Password = ""
	helpers.Render(c, status, "signup.html", gin.H{
		"Title": "Sign Up",
		"Form":  form,
		"Error": message,
	})
}
