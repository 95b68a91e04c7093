package handlers

import (
	"coffeemap/middleware"
	"coffeemap/models"

	"github.com/gin-gonic/gin"
)

// currentUser returns the authenticated user set by the auth
// middleware, or nil for unauthenticated requests.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(middleware.ContextUser)
	if !ok {
		return nil
	}
	usr, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return usr
}
