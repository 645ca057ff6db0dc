package web

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"yatube/auth"
	"yatube/db"
	"yatube/models"
	"yatube/templates"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// rendered is what the last request handed to its template
type rendered struct {
	template string
	view     any
}

type testClient struct {
	t       *testing.T
	router  *gin.Engine
	last    *rendered
	cookies []*http.Cookie
}

func setup(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := db.OpenMemory(t.Name()); err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	if err := models.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(db.Close)
	auth.DefaultThrottle.Reset("192.0.2.1") // httptest client address
}

func newClient(t *testing.T) *testClient {
	t.Helper()
	client := &testClient{t: t}
	router := gin.New()
	router.SetHTMLTemplate(templates.MustLoad(""))
	router.Use(sessions.Sessions("sessionid", cookie.NewStore([]byte("test-session-key"))))
	router.Use(func(c *gin.Context) {
		c.Next()
		if name, ok := c.Get(templateKey); ok {
			view, _ := c.Get(viewKey)
			client.last = &rendered{name.(string), view}
		}
	})
	router.GET("/test/login/:id", func(c *gin.Context) {
		id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
		if err := auth.LoadSession(c).LoginUser(&models.User{ID: id}); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusNoContent)
	})
	Register(router)
	client.router = router
	return client
}

// forceLogin logs the client in as `user` without a password
func (tc *testClient) forceLogin(user *models.User) *testClient {
	tc.t.Helper()
	w := tc.do(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/test/login/%d", user.ID), nil))
	if w.Code != http.StatusNoContent {
		tc.t.Fatalf("forceLogin: status %d", w.Code)
	}
	return tc
}

func (tc *testClient) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range tc.cookies {
		req.AddCookie(c)
	}
	tc.last = nil
	w := httptest.NewRecorder()
	tc.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		tc.setCookie(c)
	}
	return w
}

func (tc *testClient) setCookie(cookie *http.Cookie) {
	kept := []*http.Cookie{}
	for _, c := range tc.cookies {
		if c.Name != cookie.Name {
			kept = append(kept, c)
		}
	}
	if cookie.MaxAge >= 0 && cookie.Value != "" {
		kept = append(kept, cookie)
	}
	tc.cookies = kept
}

func (tc *testClient) get(path string) *httptest.ResponseRecorder {
	return tc.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (tc *testClient) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return tc.do(req)
}

// view returns the typed view of the last rendered page
func view[T any](tc *testClient) T {
	tc.t.Helper()
	if tc.last == nil {
		tc.t.Fatalf("nothing was rendered")
	}
	v, ok := tc.last.view.(T)
	if !ok {
		tc.t.Fatalf("view is %T", tc.last.view)
	}
	return v
}

func createUser(t *testing.T, username string) models.User {
	t.Helper()
	user, err := models.UserCreate(models.UserCreateRequest{Username: username, Password: "password-" + username})
	if err != nil {
		t.Fatalf("UserCreate(%s): %v", username, err)
	}
	return user
}

func createGroup(t *testing.T, title, slug, description string) models.Group {
	t.Helper()
	group, err := models.GroupCreate(title, slug, description)
	if err != nil {
		t.Fatalf("GroupCreate(%s): %v", slug, err)
	}
	return group
}

func createPost(t *testing.T, author *models.User, text string, group *models.Group) models.Post {
	t.Helper()
	var groupID *uint64
	if group != nil {
		groupID = &group.ID
	}
	post, err := models.PostCreate(author, text, groupID)
	if err != nil {
		t.Fatalf("PostCreate: %v", err)
	}
	return post
}

func countPosts(t *testing.T) int64 {
	t.Helper()
	count, err := models.CountPosts()
	if err != nil {
		t.Fatalf("CountPosts: %v", err)
	}
	return count
}
