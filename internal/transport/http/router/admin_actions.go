package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tshirt-design-api/internal/domain"
	"tshirt-design-api/internal/service"
	"tshirt-design-api/internal/transport/http/ez"
)

// 评审：列表（可按状态过滤）+ 裁决 + 删除；分组已整体 AuthJWT(admin)
func mountAdminDesignActions(admin *gin.RouterGroup, designs *service.DesignService) {
	e := ez.New(admin)

	type listQ struct {
		Status string `form:"status"`
	}
	ez.Register(e, ez.Action[listQ, []domain.Design]{
		Method: http.MethodGet,
		Path:   "/designs",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *listQ) ([]domain.Design, error) {
			return designs.ListAll(c, domain.Status(in.Status))
		},
	})

	ez.Register(e, ez.Action[updateDesignIn, *domain.Design]{
		Method: http.MethodPatch,
		Path:   "/designs/:id",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *updateDesignIn) (*domain.Design, error) {
			return designs.Update(c, c.Param("id"), callerFrom(c), in.toInput())
		},
	})

	ez.Register(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/designs/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			if err := designs.Delete(c, id, callerFrom(c)); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})
}

func mountAdminUserActions(admin *gin.RouterGroup, users *service.UserService) {
	e := ez.New(admin)

	type listQ struct {
		Offset      int    `form:"offset,default=0"`
		Limit       int    `form:"limit,default=20"`
		Q           string `form:"q"`            // 按 email/姓名模糊搜
		WithDeleted bool   `form:"with_deleted"` // 是否包含已封禁
	}
	type listOut struct {
		Total int64         `json:"total"`
		Items []domain.User `json:"items"`
	}
	ez.Register(e, ez.Action[listQ, listOut]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *listQ) (listOut, error) {
			items, total, err := users.List(in.Offset, in.Limit, in.Q, in.WithDeleted)
			if err != nil {
				return listOut{}, ez.Internal("list users failed", err)
			}
			return listOut{Total: total, Items: items}, nil
		},
	})

	ez.Register(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/users/:id/ban",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			if id == "" {
				return nil, ez.BadRequest("missing id")
			}
			if err := users.Ban(id); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})
}
