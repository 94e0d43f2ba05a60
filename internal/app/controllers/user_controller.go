package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/learnify/internal/app/models/dto"
	"github.com/yigit/learnify/internal/app/services"
	"github.com/yigit/learnify/internal/middleware"
)

// UserController handles profile and admin user endpoints
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetProfile returns the caller's profile
// @Summary Get my profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /me [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	user, err := c.userService.GetProfile(ctx.Request.Context(), p.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// ListUsers returns every user
// @Summary List all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	users, err := c.userService.ListUsers(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.NewUserResponse(u))
	}
	ctx.JSON(http.StatusOK, resp)
}

// ApproveMentor marks a mentor as approved
// @Summary Approve a mentor
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Mentor user ID"
// @Success 200 {object} dto.ApproveMentorResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid mentor ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Router /admin/approve-mentor/{id} [patch]
func (c *UserController) ApproveMentor(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id", "Invalid mentor ID")
	if !ok {
		return
	}

	mentor, err := c.userService.ApproveMentor(ctx.Request.Context(), p, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ApproveMentorResponse{
		Message: "Mentor approved successfully",
		Mentor: dto.MentorSummary{
			ID:       mentor.ID,
			Name:     mentor.Name,
			Email:    mentor.Email,
			Approved: mentor.Approved,
		},
	})
}
