package response

// 业务码直接基于 HTTP 语义
const (
	CodeOK           = 0
	CodeBadRequest   = 400
	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeNotFound     = 404
	CodeServerError  = 500
)

// CodeMsgMap 集中管理 code -> 默认 msg
var CodeMsgMap = map[int]string{
	CodeOK:           "OK",
	CodeBadRequest:   "Bad Request",
	CodeUnauthorized: "Unauthorized",
	CodeForbidden:    "Forbidden",
	CodeNotFound:     "Not Found",
	CodeServerError:  "Internal Server Error",
}
