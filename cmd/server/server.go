package main

import (
	"github.com/gin-gonic/gin"

	"github.com/navwar/seabattle/internal/game/fleet"
	"github.com/navwar/seabattle/internal/identity"
	"github.com/navwar/seabattle/internal/match"
)

type server struct {
	engine  *match.Engine
	players *identity.Registry
}

// handleRegister issues a player id with its bearer token. This is a
// stand-in for a real account service; every other endpoint only needs
// the opaque id the token resolves to.
func (s *server) handleRegister(c *gin.Context) {
	playerID, token := s.players.Issue()

	c.JSON(200, gin.H{
		"player_id": playerID,
		"token":     token,
	})
}

func (s *server) handleCreateGame(c *gin.Context) {
	var params struct {
		Ships []fleet.ShipSpec `json:"ships" binding:"required"`
	}

	if !tryBindParams(c, &params) {
		return
	}

	m, err := s.engine.Create(c.Request.Context(), playerID(c), params.Ships)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(200, m)
}

func (s *server) handleJoinGame(c *gin.Context) {
	var params struct {
		Ships []fleet.ShipSpec `json:"ships" binding:"required"`
	}

	if !tryBindParams(c, &params) {
		return
	}

	m, err := s.engine.Join(c.Request.Context(), c.Param("id"), playerID(c), params.Ships)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(200, m)
}

func (s *server) handleListGames(c *gin.Context) {
	matches, err := s.engine.ListOpen(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(200, matches)
}

func (s *server) handleMyGames(c *gin.Context) {
	matches, err := s.engine.ListFor(c.Request.Context(), playerID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(200, matches)
}

func (s *server) handleGetGame(c *gin.Context) {
	m, err := s.engine.Get(c.Request.Context(), c.Param("id"), playerID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(200, m)
}

func (s *server) handleBoard(c *gin.Context) {
	view, err := s.engine.View(c.Request.Context(), c.Param("id"), playerID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(200, view)
}

func (s *server) handleMove(c *gin.Context) {
	var params struct {
		X *int `json:"x" binding:"required"`
		Y *int `json:"y" binding:"required"`
	}

	if !tryBindParams(c, &params) {
		return
	}

	result, err := s.engine.Fire(c.Request.Context(), c.Param("id"), playerID(c), *params.X, *params.Y)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(200, result)
}

func (s *server) handleSurrender(c *gin.Context) {
	m, err := s.engine.Concede(c.Request.Context(), c.Param("id"), playerID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"winner_id": m.WinnerID,
		"phase":     m.Phase,
	})
}

func (s *server) RegisterEndpoints(e *gin.Engine) {
	e.POST("/api/players", s.handleRegister)

	games := e.Group("/api/games", s.requireAuth)
	games.GET("", s.handleListGames)
	games.POST("", s.handleCreateGame)
	games.GET("/my", s.handleMyGames)
	games.GET("/:id", s.handleGetGame)
	games.POST("/:id/join", s.handleJoinGame)
	games.GET("/:id/board", s.handleBoard)
	games.POST("/:id/move", s.handleMove)
	games.POST("/:id/surrender", s.handleSurrender)
}
