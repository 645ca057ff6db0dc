package auth

import (
	"net/http"
	"net/url"
	"yatube/models"

	"github.com/gin-gonic/gin"
)

// User is authenticated and posseses the required permissions
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper class that adds auth checks + User pre-loading.
// Any of the `required` permissions is enough.
type Router struct {
	Base gin.IRoutes
	// Denied responds to guests and users without permission. JSON 401 if nil
	Denied func(c *gin.Context, user *models.User)
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc, required []models.Permission) {
	user := Viewer(c)
	if user.ID == 0 || !user.HasAnyPermission(required...) {
		if cr.Denied != nil {
			cr.Denied(c, &user)
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
		return
	}
	handler(c, &user)
}

func (cr *Router) POST(path string, handler HandlerFunc, required ...models.Permission) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler, required)
	})
}

func (cr *Router) GET(path string, handler HandlerFunc, required ...models.Permission) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler, required)
	})
}

// RedirectToLogin sends guests to the login page, coming back to the current page afterwards
func RedirectToLogin(c *gin.Context, user *models.User) {
	if user.ID != 0 {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
	c.Redirect(http.StatusFound, LoginURL+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
}

const LoginURL = "/auth/login/"
