package controller

import (
	"level_tracker_backend/internal/service"
	"level_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	BrowseService *service.BrowseService
	Workspace     *service.Workspace
}

// workspace is nil in read-only deployments.
func NewHealthController(browseService *service.BrowseService, workspace *service.Workspace) *HealthController {
	return &HealthController{BrowseService: browseService, Workspace: workspace}
}

// @Summary 健康检查
// @Description 检查服务状态与目录数据源
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	catalog := "up"
	levels, err := c.BrowseService.All(ctx.Request.Context())
	if err != nil {
		catalog = "down"
	}

	components := gin.H{
		"catalog": catalog,
		"source":  c.BrowseService.Loader.Describe(),
		"levels":  len(levels),
	}
	if c.Workspace != nil {
		components["moderator"] = c.Workspace.Status()
	}

	util.Success(ctx, gin.H{
		"status":     "ok",
		"readOnly":   c.Workspace == nil,
		"components": components,
	})
}
