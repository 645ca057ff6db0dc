package web

import (
	"errors"
	"log"
	"net/http"
	"yatube/auth"
	"yatube/models"
	"yatube/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

func SignupPage(c *gin.Context) {
	render(c, http.StatusOK, "users/signup.html", SignupView{
		Base:   newBase(c, "Sign up"),
		Errors: map[string]string{},
	})
}

// Signup creates the user and logs them in
func Signup(c *gin.Context) {
	form, errs := bindSignupForm(c)
	var user models.User
	if len(errs) == 0 {
		var err error
		user, err = models.UserCreate(models.UserCreateRequest{
			Username:  form.Username,
			FirstName: form.FirstName,
			LastName:  form.LastName,
			Email:     form.Email,
			Password:  form.Password,
		})
		if errors.Is(err, models.ErrUsernameTaken) {
			errs["username"] = err.Error()
		} else if err != nil {
			respondError(c, err)
			return
		}
	}
	if len(errs) > 0 {
		form.Password = ""
		render(c, http.StatusOK, "users/signup.html", SignupView{
			Base:   newBase(c, "Sign up"),
			Form:   form,
			Errors: errs,
		})
		return
	}
	if err := auth.LoadSession(c).LoginUser(&user); err != nil {
		log.Printf("Cannot save session for %s: %v", user.Username, err)
	}
	c.Redirect(http.StatusFound, "/")
}

func LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "users/login.html", LoginView{
		Base: newBase(c, "Log in"),
		Next: c.Query("next"),
	})
}

func Login(c *gin.Context) {
	r := LoginRequest{}
	_ = c.ShouldBind(&r)
	view := LoginView{
		Base:     newBase(c, "Log in"),
		Username: r.Username,
		Next:     r.Next,
	}
	ip := c.ClientIP()
	if auth.DefaultThrottle.Blocked(ip) {
		view.Error = "Too many failed attempts, try again later."
		render(c, http.StatusTooManyRequests, "users/login.html", view)
		return
	}
	user, err := models.UserLogin(r.Username, r.Password)
	if err != nil {
		auth.DefaultThrottle.Fail(ip)
		view.Error = "Please enter a correct username and password."
		render(c, http.StatusOK, "users/login.html", view)
		return
	}
	auth.DefaultThrottle.Reset(ip)
	if err = auth.LoadSession(c).LoginUser(&user); err != nil {
		respondError(c, err)
		return
	}
	next := "/"
	if utils.IsLocalPath(r.Next) {
		next = r.Next
	}
	c.Redirect(http.StatusFound, next)
}

func Logout(c *gin.Context) {
	auth.LoadSession(c).LogoutUser()
	render(c, http.StatusOK, "users/logged_out.html", struct{ Base }{Base{Title: "Logged out"}})
}
