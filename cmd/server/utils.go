package main

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/navwar/seabattle/internal/apperr"
)

const (
	ErrBadFormat    string = "bad_format"
	ErrUnauthorized string = "unauthorized"
)

const playerIDKey = "playerID"

func tryBindParams(ctx *gin.Context, obj any) (ok bool) {
	if err := ctx.BindJSON(&obj); err != nil {
		ctx.JSON(422, map[string]any{
			"error":   ErrBadFormat,
			"details": err.Error(),
		})
		return false
	}
	return true
}

// requireAuth resolves the bearer token into a player id and stashes it
// in the request context.
func (s *server) requireAuth(c *gin.Context) {
	token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	if !found || token == "" {
		c.AbortWithStatusJSON(401, map[string]any{
			"error":   ErrUnauthorized,
			"details": "missing bearer token",
		})
		return
	}

	id, err := s.players.Resolve(c.Request.Context(), token)
	if err != nil {
		c.AbortWithStatusJSON(401, map[string]any{
			"error":   ErrUnauthorized,
			"details": err.Error(),
		})
		return
	}

	c.Set(playerIDKey, id)
	c.Next()
}

func playerID(c *gin.Context) string {
	return c.GetString(playerIDKey)
}

func abortWithError(c *gin.Context, err error) {
	code := apperr.GetCode(err)
	c.JSON(code.HTTPStatus(), map[string]any{
		"error":   code,
		"details": err.Error(),
	})
}
