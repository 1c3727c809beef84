package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tshirt-design-api/internal/core/auth"
	"tshirt-design-api/internal/domain"
	"tshirt-design-api/internal/service"
	"tshirt-design-api/internal/transport/http/ez"
	mdw "tshirt-design-api/internal/transport/http/middleware"
)

type authOut struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func mountAuthActions(api *gin.RouterGroup, users *service.UserService, jwter *auth.JWTer) {
	g := api.Group("/auth")
	pub := ez.New(g)

	type signupIn struct {
		Firstname string `json:"firstname" binding:"required,max=50"`
		Lastname  string `json:"lastname" binding:"required,max=50"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=8"`
	}
	ez.Register(pub, ez.Action[signupIn, authOut]{
		Method: http.MethodPost,
		Path:   "/signup",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *signupIn) (authOut, error) {
			u, err := users.Register(service.RegisterInput{
				Firstname: in.Firstname,
				Lastname:  in.Lastname,
				Email:     in.Email,
				Password:  in.Password,
			})
			if err != nil {
				return authOut{}, err
			}
			tok, err := jwter.Issue(u.ID, u.Role)
			if err != nil {
				return authOut{}, ez.Internal("issue token failed", err)
			}
			return authOut{Token: tok, User: u}, nil
		},
	})

	type loginIn struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	ez.Register(pub, ez.Action[loginIn, authOut]{
		Method: http.MethodPost,
		Path:   "/login",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (authOut, error) {
			u, err := users.Login(in.Email, in.Password)
			if err != nil {
				return authOut{}, err
			}
			tok, err := jwter.Issue(u.ID, u.Role)
			if err != nil {
				return authOut{}, ez.Internal("issue token failed", err)
			}
			return authOut{Token: tok, User: u}, nil
		},
	})

	authed := g.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))
	priv := ez.New(authed)

	ez.Register(priv, ez.Action[struct{}, *domain.User]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			return users.Get(c.GetString(mdw.KeyUserID))
		},
	})

	// JWT 无状态，登出由客户端丢弃 token
	ez.Register(priv, ez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/logout",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			return gin.H{"message": "logged out"}, nil
		},
	})
}
