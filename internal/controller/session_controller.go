package controller

import (
	"errors"
	"io"

	"level_tracker_backend/internal/model"
	"level_tracker_backend/internal/service"
	"level_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SessionController drives the level and copy dialogs of the moderator page.
type SessionController struct {
	Workspace *service.Workspace
}

func NewSessionController(workspace *service.Workspace) *SessionController {
	return &SessionController{Workspace: workspace}
}

// bindOptional binds a JSON body that may be empty.
func bindOptional(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		util.BadRequest(ctx, err.Error())
		return false
	}
	return true
}

// @Summary 当前编辑状态
// @Tags 编辑会话
// @Produce json
// @Success 200 {object} util.Response{data=service.SessionView}
// @Router /moderator/session [get]
func (c *SessionController) Get(ctx *gin.Context) {
	util.Success(ctx, c.Workspace.Session())
}

// @Summary 打开关卡对话框
// @Description index 为空时新增关卡
// @Tags 编辑会话
// @Accept json
// @Produce json
// @Param body body service.OpenLevelRequest false "关卡位置"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 409 {object} util.Response
// @Router /moderator/session/level [post]
func (c *SessionController) OpenLevel(ctx *gin.Context) {
	var req service.OpenLevelRequest
	if !bindOptional(ctx, &req) {
		return
	}
	var (
		view service.SessionView
		err  error
	)
	if req.Index == nil {
		view, err = c.Workspace.OpenAddLevel()
	} else {
		view, err = c.Workspace.OpenEditLevel(*req.Index)
	}
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary 提交关卡
// @Tags 编辑会话
// @Accept json
// @Produce json
// @Param level body model.LevelForm true "关卡信息"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /moderator/session/level/submit [post]
func (c *SessionController) SubmitLevel(ctx *gin.Context) {
	var form model.LevelForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	index, created, err := c.Workspace.SubmitLevel(form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	message := "Level updated successfully"
	if created {
		message = "Level added successfully"
	}
	util.SuccessMessage(ctx, message, gin.H{"index": index})
}

// @Summary 关闭关卡对话框
// @Tags 编辑会话
// @Produce json
// @Success 200 {object} util.Response
// @Router /moderator/session/level/cancel [post]
func (c *SessionController) CancelLevel(ctx *gin.Context) {
	if err := c.Workspace.CancelLevel(); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, c.Workspace.Session())
}

// @Summary 打开副本对话框
// @Description copyIndex 为空时新增副本
// @Tags 编辑会话
// @Accept json
// @Produce json
// @Param body body service.OpenCopyRequest false "副本位置"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Router /moderator/session/copy [post]
func (c *SessionController) OpenCopy(ctx *gin.Context) {
	var req service.OpenCopyRequest
	if !bindOptional(ctx, &req) {
		return
	}
	var (
		view service.SessionView
		err  error
	)
	if req.CopyIndex == nil {
		view, err = c.Workspace.OpenAddCopy()
	} else {
		view, err = c.Workspace.OpenEditCopy(*req.CopyIndex)
	}
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary 提交副本
// @Tags 编辑会话
// @Accept json
// @Produce json
// @Param copy body model.CopyForm true "副本信息"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Router /moderator/session/copy/submit [post]
func (c *SessionController) SubmitCopy(ctx *gin.Context) {
	var form model.CopyForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	view, err := c.Workspace.SubmitCopy(form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary 关闭副本对话框
// @Tags 编辑会话
// @Produce json
// @Success 200 {object} util.Response{data=service.SessionView}
// @Router /moderator/session/copy/cancel [post]
func (c *SessionController) CancelCopy(ctx *gin.Context) {
	view, err := c.Workspace.CancelCopy()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary 移除对话框中的副本
// @Description 已存在的关卡会立即删除该副本
// @Tags 编辑会话
// @Produce json
// @Param copyIndex path int true "副本位置"
// @Param confirm query bool false "确认移除"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 428 {object} util.Response
// @Router /moderator/session/copy/{copyIndex} [delete]
func (c *SessionController) RemoveCopy(ctx *gin.Context) {
	copyIndex, ok := pathIndex(ctx, "copyIndex")
	if !ok {
		return
	}
	view, err := c.Workspace.RemoveCopy(copyIndex, confirmed(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}
