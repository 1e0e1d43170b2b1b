package controller

import (
	"errors"

	"level_tracker_backend/internal/model"
	"level_tracker_backend/internal/repository"
	"level_tracker_backend/internal/service"
	"level_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps catalog and session errors onto the response envelope.
func respondError(ctx *gin.Context, err error) {
	var (
		validation *model.ValidationError
		duplicate  *repository.DuplicateIDError
		confirm    *service.ConfirmationError
	)
	switch {
	case errors.As(err, &validation):
		util.BadRequest(ctx, err.Error())
	case errors.As(err, &duplicate):
		util.Conflict(ctx, "A level with this ID already exists!")
	case errors.As(err, &confirm):
		util.ConfirmationRequired(ctx, confirm.Message)
	case errors.Is(err, util.ErrIndexOutOfRange), errors.Is(err, util.ErrLevelNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidTransition), errors.Is(err, util.ErrNoEditSession):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrEmptyQuery):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// pathIndex reads a non-negative index path parameter, answering 400 when it
// is not one.
func pathIndex(ctx *gin.Context, name string) (int, bool) {
	i := util.ParseIndex(ctx.Param(name))
	if i < 0 {
		util.BadRequest(ctx, "invalid "+name)
		return -1, false
	}
	return i, true
}

func confirmed(ctx *gin.Context) bool {
	return ctx.Query("confirm") == "true"
}
