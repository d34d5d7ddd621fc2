package api

import (
	"github.com/gin-gonic/gin"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"
)

// Response is the envelope of every /books reply.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{Status: statusSuccess, Message: message, Data: data})
}

func fail(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Status: statusFail, Message: message})
}
