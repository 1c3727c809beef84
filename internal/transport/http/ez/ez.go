package ez

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tshirt-design-api/internal/domain"
	resp "tshirt-design-api/internal/transport/http/response"
)

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"
	BindQuery Binder = "query"
	BindNone  Binder = "none" // 自己从 c.Param / c.Query 取
)

// AErr 带业务码的错误，配合 resp.Error(code, msg)
type AErr struct {
	Code int
	Msg  string
	Err  error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func BadRequest(msg string) error   { return &AErr{Code: resp.CodeBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &AErr{Code: resp.CodeUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &AErr{Code: resp.CodeForbidden, Msg: msg} }
func NotFound(msg string) error     { return &AErr{Code: resp.CodeNotFound, Msg: msg} }
func Internal(msg string, err error) error {
	return &AErr{Code: resp.CodeServerError, Msg: msg, Err: err}
}

type EZ struct{ g *gin.RouterGroup }

func New(g *gin.RouterGroup) EZ { return EZ{g: g} }

// Action 非 CRUD 一行注册：I 入参，O 出参
type Action[I any, O any] struct {
	Method  string
	Path    string
	Binder  Binder
	Auth    bool     // 要求已登录（context 里有 userId）
	Roles   []string // 限定角色（可选）
	Handler func(c *gin.Context, in *I) (O, error)
}

func Register[I any, O any](e EZ, a Action[I, O]) {
	h := func(c *gin.Context) {
		if a.Auth {
			uid := c.GetString("userId")
			if uid == "" {
				c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "unauthorized"))
				return
			}
			if len(a.Roles) > 0 && !roleAllowed(c.GetString("role"), a.Roles) {
				c.JSON(http.StatusOK, resp.Error(resp.CodeForbidden, "forbidden"))
				return
			}
		}

		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		}
		if bindErr != nil {
			c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, bindErr.Error()))
			return
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			c.JSON(http.StatusOK, toResp(err))
			return
		}
		c.JSON(http.StatusOK, resp.OK(out))
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodPatch:
		e.g.PATCH(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default:
		e.g.POST(a.Path, h)
	}
}

// toResp 统一错误映射；未识别的错误一律 500，不外泄内部细节
func toResp(err error) resp.Resp {
	var ae *AErr
	switch {
	case errors.As(err, &ae):
		return resp.Error(ae.Code, ae.Error())
	case errors.Is(err, domain.ErrNotFound):
		return resp.Error(resp.CodeNotFound, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return resp.Error(resp.CodeForbidden, err.Error())
	case errors.Is(err, domain.ErrTitleRequired),
		errors.Is(err, domain.ErrEmailTaken):
		return resp.Error(resp.CodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return resp.Error(resp.CodeUnauthorized, err.Error())
	default:
		return resp.Error(resp.CodeServerError, "internal error")
	}
}

func roleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
