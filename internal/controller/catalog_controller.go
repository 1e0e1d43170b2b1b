package controller

import (
	"errors"
	"net/http"
	"strconv"

	"level_tracker_backend/internal/service"
	"level_tracker_backend/internal/source"
	"level_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	BrowseService *service.BrowseService
}

func NewCatalogController(browseService *service.BrowseService) *CatalogController {
	return &CatalogController{BrowseService: browseService}
}

// @Summary 关卡列表
// @Description 搜索并分页浏览关卡目录
// @Tags 公开目录
// @Produce json
// @Param q query string false "搜索词"
// @Param page query int false "页码" default(1)
// @Success 200 {object} util.Response{data=service.PageResult}
// @Router /levels [get]
func (c *CatalogController) ListLevels(ctx *gin.Context) {
	page := util.ParsePage(ctx.Query("page"))
	result := c.BrowseService.List(ctx.Request.Context(), ctx.Query("q"), page)
	util.Success(ctx, result)
}

// @Summary 关卡详情
// @Tags 公开目录
// @Produce json
// @Param id path int true "关卡ID"
// @Success 200 {object} util.Response{data=model.Level}
// @Failure 404 {object} util.Response
// @Router /levels/{id} [get]
func (c *CatalogController) GetLevel(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}
	level, err := c.BrowseService.Get(ctx.Request.Context(), id)
	if err != nil {
		respondLoad(ctx, err)
		return
	}
	util.Success(ctx, level)
}

// @Summary 按名称查找关卡
// @Description 未命中时返回相近的关卡名称
// @Tags 公开目录
// @Produce json
// @Param name query string true "关卡名称"
// @Param exact query bool false "精确匹配"
// @Success 200 {object} util.Response{data=service.LookupResult}
// @Failure 404 {object} util.Response{data=service.LookupResult}
// @Router /levels/lookup [get]
func (c *CatalogController) Lookup(ctx *gin.Context) {
	exact := ctx.Query("exact") == "true"
	result, err := c.BrowseService.Lookup(ctx.Request.Context(), ctx.Query("name"), exact)
	if errors.Is(err, util.ErrLevelNotFound) {
		ctx.JSON(http.StatusNotFound, util.Response{Code: http.StatusNotFound, Message: err.Error(), Data: result})
		return
	}
	if err != nil {
		respondLoad(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// respondLoad answers 503 when the catalog could not be loaded.
func respondLoad(ctx *gin.Context, err error) {
	var loadErr *source.LoadError
	if errors.As(err, &loadErr) {
		util.Error(ctx, http.StatusServiceUnavailable, loadErr.Message())
		return
	}
	respondError(ctx, err)
}
