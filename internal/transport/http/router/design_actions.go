package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"tshirt-design-api/internal/domain"
	"tshirt-design-api/internal/service"
	"tshirt-design-api/internal/transport/http/ez"
)

type updateDesignIn struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	TshirtColor *string `json:"tshirtColor"`
	Status      *string `json:"status"`
}

func (in *updateDesignIn) toInput() service.UpdateDesignInput {
	out := service.UpdateDesignInput{
		Title:       in.Title,
		Description: in.Description,
		TshirtColor: in.TshirtColor,
	}
	if in.Status != nil {
		s := domain.Status(*in.Status)
		out.Status = &s
	}
	return out
}

// mountDesignActions 挂在已鉴权的 /api/designs 分组上
func mountDesignActions(g *gin.RouterGroup, designs *service.DesignService) {
	e := ez.New(g)

	type createIn struct {
		Title            string         `json:"title"`
		Description      string         `json:"description"`
		TshirtColor      string         `json:"tshirtColor"`
		FrontImageBase64 string         `json:"frontImageBase64"`
		BackImageBase64  string         `json:"backImageBase64"`
		FrontObjects     datatypes.JSON `json:"frontObjects"`
		BackObjects      datatypes.JSON `json:"backObjects"`
	}
	ez.Register(e, ez.Action[createIn, *domain.Design]{
		Method: http.MethodPost,
		Path:   "",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *createIn) (*domain.Design, error) {
			return designs.Create(c, callerFrom(c), service.CreateDesignInput{
				Title:            in.Title,
				Description:      in.Description,
				TshirtColor:      in.TshirtColor,
				FrontImageBase64: in.FrontImageBase64,
				BackImageBase64:  in.BackImageBase64,
				FrontObjects:     in.FrontObjects,
				BackObjects:      in.BackObjects,
			})
		},
	})

	ez.Register(e, ez.Action[struct{}, []domain.Design]{
		Method: http.MethodGet,
		Path:   "/my",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Design, error) {
			return designs.ListOwn(c, callerFrom(c))
		},
	})

	// 管理员全量列表也挂在用户端（原路由形态），角色闸门在 Action 上
	type listAllQ struct {
		Status string `form:"status"`
	}
	ez.Register(e, ez.Action[listAllQ, []domain.Design]{
		Method: http.MethodGet,
		Path:   "",
		Binder: ez.BindQuery,
		Auth:   true,
		Roles:  []string{domain.RoleAdmin},
		Handler: func(c *gin.Context, in *listAllQ) ([]domain.Design, error) {
			return designs.ListAll(c, domain.Status(in.Status))
		},
	})

	ez.Register(e, ez.Action[struct{}, *domain.Design]{
		Method: http.MethodGet,
		Path:   "/:id",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Design, error) {
			return designs.GetByID(c, c.Param("id"), callerFrom(c))
		},
	})

	ez.Register(e, ez.Action[updateDesignIn, *domain.Design]{
		Method: http.MethodPatch,
		Path:   "/:id",
		Binder: ez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *updateDesignIn) (*domain.Design, error) {
			return designs.Update(c, c.Param("id"), callerFrom(c), in.toInput())
		},
	})

	ez.Register(e, ez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/:id",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			if err := designs.Delete(c, id, callerFrom(c)); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})
}
