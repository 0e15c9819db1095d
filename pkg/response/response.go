package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应格式，code=200 表示业务成功
type Response struct {
	Code int    `json:"code"`
	Data any    `json:"data"`
	Msg  string `json:"msg"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code: 200,
		Data: data,
		Msg:  "成功",
	})
}

func SuccessMsg(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Response{
		Code: 200,
		Msg:  msg,
	})
}

// Fail 业务失败，HTTP 层仍返回 200，错误码放在响应体内
func Fail(c *gin.Context, code int, msg string) {
	c.JSON(http.StatusOK, Response{
		Code: code,
		Msg:  msg,
	})
}
