package web

import (
	"yatube/models"
	"yatube/paging"
)

// Base is shared by every page
type Base struct {
	Title  string
	Viewer models.User // ID == 0 for guests
}

type IndexView struct {
	Base
	PageObj paging.Page[models.Post]
}

type GroupView struct {
	Base
	Group   models.Group
	PageObj paging.Page[models.Post]
}

type ProfileView struct {
	Base
	Author  models.User
	Count   int64 // all posts of Author, not just this page
	PageObj paging.Page[models.Post]
}

type PostDetailView struct {
	Base
	Post    models.Post
	Count   int64 // all posts of the post's author
	CanEdit bool
}

type PostFormView struct {
	Base
	Form   PostForm
	IsEdit bool
	Post   *models.Post // set when editing
}

type LoginView struct {
	Base
	Username string
	Next     string
	Error    string
}

type SignupView struct {
	Base
	Form   SignupForm
	Errors map[string]string
}

type NotFoundView struct {
	Base
	Path string
}

func loadIndex(number int) (view IndexView, err error) {
	view.PageObj, err = models.LoadFeed(models.FeedFilter{}, number)
	return
}

func loadGroup(slug string, number int) (view GroupView, err error) {
	if view.Group, err = models.GroupBySlug(slug); err != nil {
		return
	}
	view.PageObj, err = models.LoadFeed(models.FeedFilter{GroupID: &view.Group.ID}, number)
	return
}

func loadProfile(username string, number int) (view ProfileView, err error) {
	if view.Author, err = models.UserByUsername(username); err != nil {
		return
	}
	if view.PageObj, err = models.LoadFeed(models.FeedFilter{AuthorID: &view.Author.ID}, number); err != nil {
		return
	}
	// The page already counted the author's feed
	view.Count = view.PageObj.Total
	return
}

func loadPostDetail(id uint64) (view PostDetailView, err error) {
	if view.Post, err = models.PostByID(id); err != nil {
		return
	}
	view.Count, err = models.CountPostsByAuthor(view.Post.AuthorID)
	return
}
