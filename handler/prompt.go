package handler

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"promptbox/config"
	"promptbox/dao"
	"promptbox/middleware"
	"promptbox/pkg/context"
	"promptbox/pkg/response"
	"promptbox/service"
	"promptbox/types"

	"github.com/gin-gonic/gin"
)

type Prompt struct {
	Config          *config.Config
	PromptService   service.IPromptService
	LikeService     service.ILikeService
	FavoriteService service.IFavoriteService
	StatsService    service.IStatsService
	UserDAO         *dao.Users
}

func (h *Prompt) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret, h.UserDAO)
	optional := middleware.OptionalAuth(secret, h.UserDAO)

	g := r.Group("/prompts")
	g.POST("", authorize, context.Wrap(h.Create))
	g.GET("", optional, context.Wrap(h.List))
	g.GET("/stats/global", context.Wrap(h.Stats))
	g.GET("/user/my-prompts", authorize, context.Wrap(h.MyPrompts))
	g.GET("/user/favorites", authorize, context.Wrap(h.MyFavorites))
	g.GET("/user/likes", authorize, context.Wrap(h.MyLikes))
	g.GET("/:promptId", optional, context.Wrap(h.Get))
	g.PUT("/:promptId", authorize, context.Wrap(h.Update))
	g.DELETE("/:promptId", authorize, context.Wrap(h.Delete))
	g.POST("/:promptId/like", authorize, context.Wrap(h.ToggleLike))
	g.POST("/:promptId/favorite", authorize, context.Wrap(h.ToggleFavorite))
}

// getClientIP 取客户端 IP，优先 X-Forwarded-For 首项，退回连接对端地址
func getClientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return ip
}

func promptID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("promptId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewError(http.StatusBadRequest, "提示词ID非法")
	}
	return id, nil
}

func (h *Prompt) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.PromptService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Prompt) List(c *gin.Context) error {
	var page types.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, "分页参数非法")
	}

	viewerID := context.GetOptionalUserID(c)
	resp, err := h.PromptService.List(c.Request.Context(), viewerID, &page)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// Get 读取提示词，同时按 IP 记录浏览
func (h *Prompt) Get(c *gin.Context) error {
	id, err := promptID(c)
	if err != nil {
		return err
	}

	viewerID := context.GetOptionalUserID(c)
	resp, err := h.PromptService.Get(c.Request.Context(), id, viewerID, getClientIP(c))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Prompt) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	id, err := promptID(c)
	if err != nil {
		return err
	}

	var req types.UpdatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.PromptService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Prompt) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	id, err := promptID(c)
	if err != nil {
		return err
	}

	if err := h.PromptService.Delete(c.Request.Context(), userID, id); err != nil {
		return err
	}
	response.SuccessMsg(c, "删除成功")
	return nil
}

func (h *Prompt) ToggleLike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	id, err := promptID(c)
	if err != nil {
		return err
	}

	liked, err := h.LikeService.Toggle(c.Request.Context(), userID, id)
	if err != nil {
		return err
	}
	if liked {
		response.SuccessMsg(c, "点赞成功")
	} else {
		response.SuccessMsg(c, "取消点赞")
	}
	return nil
}

func (h *Prompt) ToggleFavorite(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	id, err := promptID(c)
	if err != nil {
		return err
	}

	favorited, err := h.FavoriteService.Toggle(c.Request.Context(), userID, id)
	if err != nil {
		return err
	}
	if favorited {
		response.SuccessMsg(c, "收藏成功")
	} else {
		response.SuccessMsg(c, "取消收藏")
	}
	return nil
}

func (h *Prompt) MyPrompts(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var page types.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, "分页参数非法")
	}

	resp, err := h.PromptService.ListMine(c.Request.Context(), userID, &page)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Prompt) MyFavorites(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var page types.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, "分页参数非法")
	}

	resp, err := h.PromptService.ListFavorited(c.Request.Context(), userID, &page)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Prompt) MyLikes(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var page types.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, "分页参数非法")
	}

	resp, err := h.PromptService.ListLiked(c.Request.Context(), userID, &page)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Prompt) Stats(c *gin.Context) error {
	resp, err := h.StatsService.Global(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
