package domain

import "errors"

// 业务错误集中定义，transport 层统一映射到响应码
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrTitleRequired      = errors.New("title is required")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
