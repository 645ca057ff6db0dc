package handlers

import (
	"yatube/auth"
	"yatube/models"

	"github.com/gin-gonic/gin"
)

// Register adds the JSON API under `api`
func Register(api *gin.RouterGroup) {
	api.GET("/posts/", PostList)
	api.GET("/posts/:id/", PostGet)
	api.GET("/group/list", GroupList)
	authRouter := &auth.Router{Base: api}
	authRouter.POST("/group/create", GroupCreate, models.PermissionAdmin, models.PermissionCanCreateGroups)
}
