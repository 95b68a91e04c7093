package handlers

import (
	"net/http"

	"coffeemap/services/user"
	"coffeemap/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves admin-facing user endpoints.
type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(userService user.UserService) *UserHandler {
	return &UserHandler{UserService: userService}
}

// GetUserHandler handles GET /api/users/:id. Admin only.
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	actor := currentUser(c)
	if actor == nil || !actor.CanModerate() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}

	usr, err := h.UserService.GetUserByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// ListUsersHandler handles GET /api/users. Admin only.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	actor := currentUser(c)
	if actor == nil || !actor.CanModerate() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}

	users, err := h.UserService.GetAllUsers()
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeleteUserHandler handles DELETE /api/admin/users/:id. Admin only.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	actor := currentUser(c)
	if actor == nil || !actor.CanModerate() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}

	if err := h.UserService.DeleteUser(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
