package controller

import (
	"bytes"
	"net/http"

	"level_tracker_backend/internal/model"
	"level_tracker_backend/internal/service"
	"level_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ModeratorController edits the in-memory catalog. Nothing is persisted until
// the moderator downloads the export.
type ModeratorController struct {
	Workspace     *service.Workspace
	BrowseService *service.BrowseService
}

func NewModeratorController(workspace *service.Workspace, browseService *service.BrowseService) *ModeratorController {
	return &ModeratorController{Workspace: workspace, BrowseService: browseService}
}

type moderatorList struct {
	service.PageResult
	Unsaved bool `json:"unsaved"`
}

// @Summary 管理端关卡列表
// @Tags 管理端
// @Produce json
// @Param q query string false "搜索词（包含拒绝原因）"
// @Param page query int false "页码"
// @Success 200 {object} util.Response{data=moderatorList}
// @Router /moderator/levels [get]
func (c *ModeratorController) ListLevels(ctx *gin.Context) {
	page := 0
	if p := ctx.Query("page"); p != "" {
		page = util.ParsePage(p)
	}
	result := c.Workspace.List(ctx.Query("q"), page)
	util.Success(ctx, moderatorList{PageResult: result, Unsaved: c.Workspace.Status().Unsaved})
}

// @Summary 新增关卡
// @Tags 管理端
// @Accept json
// @Produce json
// @Param level body service.LevelRequest true "关卡信息"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /moderator/levels [post]
func (c *ModeratorController) CreateLevel(ctx *gin.Context) {
	var req service.LevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	level, err := req.Level()
	if err != nil {
		respondError(ctx, err)
		return
	}
	index, err := c.Workspace.CreateLevel(level)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, "Level added successfully", gin.H{"index": index})
}

// @Summary 更新关卡
// @Description 未提供 copies 时保留原有副本
// @Tags 管理端
// @Accept json
// @Produce json
// @Param index path int true "关卡位置"
// @Param level body service.LevelRequest true "关卡信息"
// @Success 200 {object} util.Response
// @Router /moderator/levels/{index} [put]
func (c *ModeratorController) UpdateLevel(ctx *gin.Context) {
	index, ok := pathIndex(ctx, "index")
	if !ok {
		return
	}
	var req service.LevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	level, err := req.Level()
	if err != nil {
		respondError(ctx, err)
		return
	}
	newIndex, err := c.Workspace.UpdateLevel(index, level)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Level updated successfully", gin.H{"index": newIndex})
}

// @Summary 删除关卡
// @Tags 管理端
// @Produce json
// @Param index path int true "关卡位置"
// @Param confirm query bool false "确认删除"
// @Success 200 {object} util.Response
// @Failure 428 {object} util.Response
// @Router /moderator/levels/{index} [delete]
func (c *ModeratorController) DeleteLevel(ctx *gin.Context) {
	index, ok := pathIndex(ctx, "index")
	if !ok {
		return
	}
	if err := c.Workspace.DeleteLevel(index, confirmed(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Level deleted", nil)
}

// @Summary 新增副本
// @Tags 管理端
// @Accept json
// @Produce json
// @Param index path int true "关卡位置"
// @Param copy body model.CopyForm true "副本信息"
// @Success 201 {object} util.Response
// @Router /moderator/levels/{index}/copies [post]
func (c *ModeratorController) AddCopy(ctx *gin.Context) {
	index, ok := pathIndex(ctx, "index")
	if !ok {
		return
	}
	var form model.CopyForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	copyIndex, err := c.Workspace.AddCopy(index, form)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, "Copy added successfully", gin.H{"copyIndex": copyIndex})
}

// @Summary 更新副本
// @Tags 管理端
// @Accept json
// @Produce json
// @Param index path int true "关卡位置"
// @Param copyIndex path int true "副本位置"
// @Param copy body model.CopyForm true "副本信息"
// @Success 200 {object} util.Response
// @Router /moderator/levels/{index}/copies/{copyIndex} [put]
func (c *ModeratorController) UpdateCopy(ctx *gin.Context) {
	index, ok := pathIndex(ctx, "index")
	if !ok {
		return
	}
	copyIndex, ok := pathIndex(ctx, "copyIndex")
	if !ok {
		return
	}
	var form model.CopyForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.Workspace.UpdateCopy(index, copyIndex, form); err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Copy updated successfully", nil)
}

// @Summary 删除副本
// @Tags 管理端
// @Produce json
// @Param index path int true "关卡位置"
// @Param copyIndex path int true "副本位置"
// @Param confirm query bool false "确认删除"
// @Success 200 {object} util.Response
// @Failure 428 {object} util.Response
// @Router /moderator/levels/{index}/copies/{copyIndex} [delete]
func (c *ModeratorController) DeleteCopy(ctx *gin.Context) {
	index, ok := pathIndex(ctx, "index")
	if !ok {
		return
	}
	copyIndex, ok := pathIndex(ctx, "copyIndex")
	if !ok {
		return
	}
	if err := c.Workspace.DeleteCopy(index, copyIndex, confirmed(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Copy deleted", nil)
}

// @Summary 重新加载目录
// @Description 丢弃未导出的修改并从数据源重新加载
// @Tags 管理端
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /moderator/reload [post]
func (c *ModeratorController) Reload(ctx *gin.Context) {
	c.BrowseService.Reload()
	if err := c.Workspace.Load(ctx.Request.Context()); err != nil {
		respondLoad(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Catalog reloaded", c.Workspace.Status())
}

// @Summary 导出 levels.json
// @Tags 管理端
// @Produce json
// @Success 200 {file} file
// @Router /moderator/export [get]
func (c *ModeratorController) Export(ctx *gin.Context) {
	var buf bytes.Buffer
	if err := c.Workspace.Export(&buf); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", "attachment; filename="+util.ExportFileName)
	ctx.Data(http.StatusOK, util.MimeJSON, buf.Bytes())
}
