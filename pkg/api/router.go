package api

import (
	"github.com/gin-gonic/gin"
)

func NewRouter(books *BookHandler, health *HealthHandler) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), gin.LoggerWithFormatter(accessLogFormat), gin.Recovery())

	router.POST("/books", books.Create)
	router.GET("/books", books.List)
	router.GET("/books/:bookId", books.Get)
	router.PUT("/books/:bookId", books.Update)
	router.DELETE("/books/:bookId", books.Delete)
	router.GET("/manage/health", health.Check)

	return router
}
