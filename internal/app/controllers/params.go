// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/app/models/dto"
	"github.com/yigit/learnify/internal/middleware"
)

// parseIDParam reads a numeric path parameter, writing a 400 with message when it is not a number
func parseIDParam(ctx *gin.Context, name, message string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(message))
		return 0, false
	}
	return id, true
}

// principal returns the authenticated caller, writing a 401 when there is none
func principal(ctx *gin.Context) (models.Principal, bool) {
	p, ok := middleware.GetPrincipal(ctx)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return models.Principal{}, false
	}
	return p, true
}
