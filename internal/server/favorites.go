package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/toeiz/internal/session"
	"github.com/abhisek/toeiz/internal/store"
)

type favoriteRequest struct {
	Question      string   `json:"question" binding:"required"`
	Choices       []string `json:"choices" binding:"required,min=1"`
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
	Explanation   string   `json:"explanation" binding:"required"`
}

func (s *Server) toggleFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data"})
		return
	}

	sess := session.Get(c)
	saved, err := s.favorites.Toggle(c.Request.Context(), store.Favorite{
		UserID:        sess.UserID,
		Question:      req.Question,
		Choices:       req.Choices,
		CorrectAnswer: req.CorrectAnswer,
		Explanation:   req.Explanation,
	})
	if err != nil {
		s.logger.ErrorContext(c.Request.Context(), "toggle favorite", "user", sess.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	msg := "Question removed from favorites"
	if saved {
		msg = "Question added to favorites"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "favorited": saved})
}

func (s *Server) listFavorites(c *gin.Context) {
	sess := session.Get(c)
	favs, err := s.favorites.List(c.Request.Context(), sess.UserID)
	if err != nil {
		s.logger.ErrorContext(c.Request.Context(), "list favorites", "user", sess.UserID, "error", err)
		s.redirect(c, "/dashboard", session.FlashDanger, "Error retrieving favorites")
		return
	}
	if len(favs) == 0 {
		sess.AddFlash(session.FlashInfo, "No favorites found")
	}
	s.render(c, "favorites", gin.H{"Favorites": favs})
}
