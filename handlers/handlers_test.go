package handlers

import (
	"encoding/json"
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

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := db.OpenMemory(t.Name()); err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	if err := models.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(db.Close)
	router := gin.New()
	router.Use(sessions.Sessions("sessionid", cookie.NewStore([]byte("test-session-key"))))
	router.GET("/test/login/:id", func(c *gin.Context) {
		id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
		_ = auth.LoadSession(c).LoginUser(&models.User{ID: id})
		c.Status(http.StatusNoContent)
	})
	Register(router.Group("/api/v1"))
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, router *gin.Engine, path string, result any) int {
	t.Helper()
	w := serve(router, httptest.NewRequest(http.MethodGet, path, nil))
	if err := json.Unmarshal(w.Body.Bytes(), result); err != nil {
		t.Fatalf("GET %s: bad JSON %q: %v", path, w.Body.String(), err)
	}
	return w.Code
}

func loginCookies(t *testing.T, router *gin.Engine, user *models.User) []*http.Cookie {
	t.Helper()
	w := serve(router, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/test/login/%d", user.ID), nil))
	return w.Result().Cookies()
}

func TestPostList(t *testing.T) {
	router := setupRouter(t)
	author, _ := models.UserCreate(models.UserCreateRequest{Username: "auth", Password: "x"})
	other, _ := models.UserCreate(models.UserCreateRequest{Username: "other", Password: "x"})
	group, _ := models.GroupCreate("Test group", "test-slug", "")
	for i := 0; i < 13; i++ {
		models.PostCreate(&author, fmt.Sprintf("Post %d", i), &group.ID)
	}
	models.PostCreate(&other, "Other post", nil)

	tests := []struct {
		path     string
		count    int64
		numPages int
		page     int
		results  int
	}{
		{"/api/v1/posts/", 14, 2, 1, 10},
		{"/api/v1/posts/?page=2", 14, 2, 2, 4},
		{"/api/v1/posts/?page=3", 14, 2, 3, 0},
		{"/api/v1/posts/?page=1000000000000000000", 14, 2, 1000000000000000000, 0},
		{"/api/v1/posts/?group=test-slug&page=2", 13, 2, 2, 3},
		{"/api/v1/posts/?author=other", 1, 1, 1, 1},
		{"/api/v1/posts/?author=other&group=test-slug", 0, 1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			result := ListResponse[PostInfo]{}
			if code := getJSON(t, router, tt.path, &result); code != http.StatusOK {
				t.Fatalf("status = %d", code)
			}
			if result.Count != tt.count || result.NumPages != tt.numPages || result.Page != tt.page || len(result.Results) != tt.results {
				t.Errorf("got %d/%d/%d with %d results", result.Count, result.NumPages, result.Page, len(result.Results))
			}
		})
	}

	result := ListResponse[PostInfo]{}
	getJSON(t, router, "/api/v1/posts/", &result)
	if result.Results[0].Text != "Other post" || result.Results[0].Group != "" || result.Results[1].Group != "test-slug" {
		t.Errorf("newest posts = %+v", result.Results[:2])
	}

	for _, path := range []string{"/api/v1/posts/?group=nope", "/api/v1/posts/?author=nobody", "/api/v1/posts/9999/", "/api/v1/posts/abc/"} {
		if code := getJSON(t, router, path, &Response{}); code != http.StatusNotFound {
			t.Errorf("GET %s = %d, want 404", path, code)
		}
	}
}

func TestPostGet(t *testing.T) {
	router := setupRouter(t)
	user, _ := models.UserCreate(models.UserCreateRequest{Username: "auth", Password: "x"})
	post, _ := models.PostCreate(&user, "Hello", nil)
	info := PostInfo{}
	if code := getJSON(t, router, fmt.Sprintf("/api/v1/posts/%d/", post.ID), &info); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if info.ID != post.ID || info.Text != "Hello" || info.Author != "auth" {
		t.Errorf("post = %+v", info)
	}
}

func TestGroupCreate(t *testing.T) {
	router := setupRouter(t)
	admin, _ := models.UserCreate(models.UserCreateRequest{Username: "admin", Password: "x"})
	admin.Grant(models.PermissionAdmin, nil)
	plain, _ := models.UserCreate(models.UserCreateRequest{Username: "plain", Password: "x"})

	create := func(cookies []*http.Cookie, form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/group/create", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		for _, c := range cookies {
			req.AddCookie(c)
		}
		return serve(router, req)
	}
	form := url.Values{"title": {"Leo Tolstoy"}, "description": {"War and peace"}}

	if w := create(nil, form); w.Code != http.StatusUnauthorized {
		t.Errorf("guest = %d", w.Code)
	}
	if w := create(loginCookies(t, router, &plain), form); w.Code != http.StatusUnauthorized {
		t.Errorf("user without permission = %d", w.Code)
	}
	adminCookies := loginCookies(t, router, &admin)
	w := create(adminCookies, form)
	if w.Code != http.StatusOK {
		t.Fatalf("admin = %d: %s", w.Code, w.Body.String())
	}
	info := GroupInfo{}
	_ = json.Unmarshal(w.Body.Bytes(), &info)
	if info.Slug != "leo-tolstoy" || info.Description != "War and peace" {
		t.Errorf("group = %+v", info)
	}
	if w = create(adminCookies, form); w.Code != http.StatusConflict {
		t.Errorf("duplicate = %d", w.Code)
	}
	if w = create(adminCookies, url.Values{"title": {"X"}, "slug": {"bad slug"}}); w.Code != http.StatusBadRequest {
		t.Errorf("bad slug = %d", w.Code)
	}
	if w = create(adminCookies, url.Values{}); w.Code != http.StatusBadRequest {
		t.Errorf("no title = %d", w.Code)
	}

	result := ListResponse[GroupInfo]{}
	getJSON(t, router, "/api/v1/group/list", &result)
	if result.Count != 1 || len(result.Results) != 1 || result.Results[0].Slug != "leo-tolstoy" {
		t.Errorf("groups = %+v", result)
	}

	for _, page := range []string{"2", "1000000000000000000", "9223372036854775807"} {
		result = ListResponse[GroupInfo]{}
		if code := getJSON(t, router, "/api/v1/group/list?page="+page, &result); code != http.StatusOK {
			t.Errorf("group list page %s = %d", page, code)
		}
		if result.Count != 1 || len(result.Results) != 0 {
			t.Errorf("group list page %s = %+v", page, result)
		}
	}
}
