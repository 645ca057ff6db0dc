package web

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"yatube/auth"
	"yatube/handlers"
	"yatube/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	templateKey = "template"
	viewKey     = "view"
)

// Register adds all HTML pages to the router
func Register(router *gin.Engine) {
	router.GET("/", Index)
	router.GET("/group/:slug/", GroupPosts)
	router.GET("/profile/:username/", Profile)
	router.GET("/posts/:id/", PostDetail)
	// Guests go to the login page and come back
	authRouter := &auth.Router{Base: router, Denied: auth.RedirectToLogin}
	authRouter.GET("/create/", PostCreateForm)
	authRouter.POST("/create/", PostCreate)
	authRouter.GET("/posts/:id/edit/", PostEditForm)
	authRouter.POST("/posts/:id/edit/", PostEdit)
	// Users
	router.GET("/auth/signup/", SignupPage)
	router.POST("/auth/signup/", Signup)
	router.GET(auth.LoginURL, LoginPage)
	router.POST(auth.LoginURL, Login)
	router.GET("/auth/logout/", Logout)
	// Misc
	router.GET("/robots.txt", utils.CacheControl(utils.CacheDay), func(c *gin.Context) {
		c.String(http.StatusOK, "User-agent: *\nDisallow: /auth/\n")
	})
	router.NoRoute(NotFound)
}

func newBase(c *gin.Context, title string) Base {
	return Base{
		Title:  title,
		Viewer: auth.Viewer(c),
	}
}

// render keeps the template name and view in the context for middlewares (and tests)
func render(c *gin.Context, status int, name string, view any) {
	c.Set(templateKey, name)
	c.Set(viewKey, view)
	c.HTML(status, name, view)
}

func NotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "core/404.html", NotFoundView{
		Base: newBase(c, "Page not found"),
		Path: c.Request.URL.Path,
	})
}

// respondError shows 404 for missing records, anything else is a server error
func respondError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c)
		return
	}
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, handlers.DBError1Response)
}

func postIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		NotFound(c)
		return 0, false
	}
	return id, true
}
