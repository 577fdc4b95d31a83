package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/toeiz/internal/auth"
	"github.com/abhisek/toeiz/internal/session"
	"github.com/abhisek/toeiz/internal/store"
	"github.com/abhisek/toeiz/internal/streak"
)

func (s *Server) index(c *gin.Context) {
	if session.Get(c).LoggedIn() {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	s.render(c, "index", nil)
}

func (s *Server) dashboard(c *gin.Context) {
	sess := session.Get(c)
	user, err := s.users.ByID(c.Request.Context(), sess.UserID)
	if errors.Is(err, store.ErrNotFound) {
		sess.UserID = 0
		s.redirect(c, "/login", session.FlashWarning, "Please log in again")
		return
	}
	if err != nil {
		s.logger.ErrorContext(c.Request.Context(), "load user", "user", sess.UserID, "error", err)
		sess.AddFlash(session.FlashDanger, "Error retrieving user data")
		s.render(c, "dashboard", gin.H{"Username": "Guest"})
		return
	}

	s.render(c, "dashboard", gin.H{
		"Username":      user.Username,
		"Streak":        user.Streak,
		"NextMilestone": streak.NextMilestone(user.Streak),
	})
}

func (s *Server) registerForm(c *gin.Context) {
	s.render(c, "register", nil)
}

func (s *Server) register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	switch {
	case username == "" || password == "":
		s.redirect(c, "/register", session.FlashDanger, "Please fill in all fields")
		return
	case password != c.PostForm("confirm_password"):
		s.redirect(c, "/register", session.FlashDanger, "Passwords do not match")
		return
	case len(password) < auth.MinPasswordLength:
		s.redirect(c, "/register", session.FlashDanger, "Password must be at least %d characters", auth.MinPasswordLength)
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		s.logger.ErrorContext(c.Request.Context(), "hash password", "error", err)
		s.redirect(c, "/register", session.FlashDanger, "Error creating account")
		return
	}

	_, err = s.users.Create(c.Request.Context(), username, hash)
	if errors.Is(err, store.ErrDuplicate) {
		s.redirect(c, "/register", session.FlashDanger, "Username already exists")
		return
	}
	if err != nil {
		s.logger.ErrorContext(c.Request.Context(), "create user", "error", err)
		s.redirect(c, "/register", session.FlashDanger, "Error creating account")
		return
	}

	s.redirect(c, "/login", session.FlashSuccess, "Account created successfully!")
}

func (s *Server) loginForm(c *gin.Context) {
	s.render(c, "login", nil)
}

func (s *Server) login(c *gin.Context) {
	sess := session.Get(c)
	sess.UserID = 0

	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	if username == "" || password == "" {
		s.redirect(c, "/login", session.FlashDanger, "Please fill in all fields")
		return
	}

	user, err := s.users.ByUsername(c.Request.Context(), username)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		s.logger.ErrorContext(c.Request.Context(), "load user", "error", err)
		s.redirect(c, "/login", session.FlashDanger, "Error logging in")
		return
	}
	if user == nil || auth.CheckPassword(user.Password, password) != nil {
		s.redirect(c, "/login", session.FlashDanger, "Invalid username or password")
		return
	}

	sess.UserID = user.ID
	s.redirect(c, "/dashboard", session.FlashSuccess, "Logged in successfully")
}

func (s *Server) logout(c *gin.Context) {
	session.Get(c).UserID = 0
	s.redirect(c, "/", session.FlashSuccess, "Logged out successfully")
}

func (s *Server) changePasswordForm(c *gin.Context) {
	s.render(c, "change_password", nil)
}

func (s *Server) changePassword(c *gin.Context) {
	sess := session.Get(c)
	oldPassword := c.PostForm("old_password")
	newPassword := c.PostForm("new_password")

	switch {
	case oldPassword == "" || newPassword == "":
		s.redirect(c, "/change_password", session.FlashDanger, "Please fill in all fields")
		return
	case newPassword != c.PostForm("confirm_new_password"):
		s.redirect(c, "/change_password", session.FlashDanger, "New passwords do not match")
		return
	case len(newPassword) < auth.MinPasswordLength:
		s.redirect(c, "/change_password", session.FlashDanger, "Password must be at least %d characters", auth.MinPasswordLength)
		return
	}

	ctx := c.Request.Context()
	user, err := s.users.ByID(ctx, sess.UserID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		s.logger.ErrorContext(ctx, "load user", "user", sess.UserID, "error", err)
		s.redirect(c, "/change_password", session.FlashDanger, "Error changing password")
		return
	}
	if user == nil || auth.CheckPassword(user.Password, oldPassword) != nil {
		s.redirect(c, "/change_password", session.FlashDanger, "Invalid old password")
		return
	}

	hash, err := auth.HashPassword(newPassword)
	if err == nil {
		err = s.users.UpdatePassword(ctx, user.ID, hash)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "update password", "user", user.ID, "error", err)
		s.redirect(c, "/change_password", session.FlashDanger, "Error changing password")
		return
	}

	s.redirect(c, "/dashboard", session.FlashSuccess, "Password changed successfully")
}
