package web

import (
	"errors"
	"regexp"
	"strings"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type FieldKind string

const (
	FieldText   FieldKind = "text"
	FieldChoice FieldKind = "choice"

	errRequired      = "This field is required."
	errInvalidChoice = "Select a valid choice."
)

// PostForm is used both for new posts and edits
type PostForm struct {
	Text   string            `form:"text" binding:"required"`
	Group  uint64            `form:"group"` // 0 - no group
	Groups []models.Group    `form:"-"`
	Errors map[string]string `form:"-"`
}

func (f PostForm) Fields() map[string]FieldKind {
	return map[string]FieldKind{
		"text":  FieldText,
		"group": FieldChoice,
	}
}

func (f PostForm) Valid() bool {
	return len(f.Errors) == 0
}

func (f PostForm) GroupID() *uint64 {
	if f.Group == 0 {
		return nil
	}
	id := f.Group
	return &id
}

func newPostForm(groups []models.Group) PostForm {
	return PostForm{Groups: groups, Errors: map[string]string{}}
}

// bindPostForm validates the submitted form against the known `groups`
func bindPostForm(c *gin.Context, groups []models.Group) PostForm {
	form := newPostForm(groups)
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			addValidationErrors(form.Errors, verrs)
		} else {
			// Only the group can fail to parse
			form.Errors["group"] = errInvalidChoice
			form.Group = 0
		}
	}
	form.Text = strings.TrimSpace(form.Text)
	if form.Text == "" {
		form.Errors["text"] = errRequired
	}
	if form.Group != 0 && !hasGroup(groups, form.Group) {
		form.Errors["group"] = errInvalidChoice
	}
	return form
}

func hasGroup(groups []models.Group, id uint64) bool {
	for _, g := range groups {
		if g.ID == id {
			return true
		}
	}
	return false
}

func addValidationErrors(errs map[string]string, verrs validator.ValidationErrors) {
	for _, fe := range verrs {
		name := formFieldName(fe.Field())
		switch fe.Tag() {
		case "required":
			errs[name] = errRequired
		case "min":
			errs[name] = "Ensure this value has at least " + fe.Param() + " characters."
		case "max":
			errs[name] = "Ensure this value has at most " + fe.Param() + " characters."
		case "email":
			errs[name] = "Enter a valid email address."
		default:
			errs[name] = "Enter a valid value."
		}
	}
}

var fieldNames = map[string]string{
	"FirstName": "first_name",
	"LastName":  "last_name",
}

func formFieldName(structField string) string {
	if name, ok := fieldNames[structField]; ok {
		return name
	}
	return strings.ToLower(structField)
}

type SignupForm struct {
	FirstName string `form:"first_name" binding:"max=150"`
	LastName  string `form:"last_name" binding:"max=150"`
	Username  string `form:"username" binding:"required,max=150"`
	Email     string `form:"email" binding:"omitempty,email"`
	Password  string `form:"password" binding:"required,min=8"`
}

var usernameRe = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

func bindSignupForm(c *gin.Context) (form SignupForm, errs map[string]string) {
	errs = map[string]string{}
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			errs["form"] = err.Error()
			return
		}
		addValidationErrors(errs, verrs)
	}
	form.Username = strings.TrimSpace(form.Username)
	if _, ok := errs["username"]; !ok && !usernameRe.MatchString(form.Username) {
		errs["username"] = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	}
	return
}
