package web

import (
	"net/http"
	"strconv"
	"yatube/events"
	"yatube/models"
	"yatube/paging"

	"github.com/gin-gonic/gin"
)

func Index(c *gin.Context) {
	view, err := loadIndex(paging.ParseNumber(c.Query("page")))
	if err != nil {
		respondError(c, err)
		return
	}
	view.Base = newBase(c, "Yatube: latest posts")
	render(c, http.StatusOK, "posts/index.html", view)
}

func GroupPosts(c *gin.Context) {
	view, err := loadGroup(c.Param("slug"), paging.ParseNumber(c.Query("page")))
	if err != nil {
		respondError(c, err)
		return
	}
	view.Base = newBase(c, "Posts of the group "+view.Group.Title)
	render(c, http.StatusOK, "posts/group_list.html", view)
}

func Profile(c *gin.Context) {
	view, err := loadProfile(c.Param("username"), paging.ParseNumber(c.Query("page")))
	if err != nil {
		respondError(c, err)
		return
	}
	view.Base = newBase(c, "Profile of "+view.Author.FullName())
	render(c, http.StatusOK, "posts/profile.html", view)
}

func PostDetail(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}
	view, err := loadPostDetail(id)
	if err != nil {
		respondError(c, err)
		return
	}
	view.Base = newBase(c, "Post "+view.Post.Text)
	view.CanEdit = view.Viewer.ID != 0 && view.Viewer.ID == view.Post.AuthorID
	render(c, http.StatusOK, "posts/post_detail.html", view)
}

func PostCreateForm(c *gin.Context, user *models.User) {
	groups, err := models.GroupList()
	if err != nil {
		respondError(c, err)
		return
	}
	render(c, http.StatusOK, "posts/create_post.html", PostFormView{
		Base: newBase(c, "New post"),
		Form: newPostForm(groups),
	})
}

// PostCreate redirects to the author's profile, where the new post is first
func PostCreate(c *gin.Context, user *models.User) {
	groups, err := models.GroupList()
	if err != nil {
		respondError(c, err)
		return
	}
	form := bindPostForm(c, groups)
	if !form.Valid() {
		render(c, http.StatusOK, "posts/create_post.html", PostFormView{
			Base: newBase(c, "New post"),
			Form: form,
		})
		return
	}
	post, err := models.PostCreate(user, form.Text, form.GroupID())
	if err != nil {
		respondError(c, err)
		return
	}
	events.PostCreated(&post)
	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

// loadOwnPost redirects to the post page if `user` is not the author
func loadOwnPost(c *gin.Context, user *models.User) (post models.Post, ok bool) {
	id, ok := postIDParam(c)
	if !ok {
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		respondError(c, err)
		return post, false
	}
	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, postURL(post.ID))
		return post, false
	}
	return post, true
}

func PostEditForm(c *gin.Context, user *models.User) {
	post, ok := loadOwnPost(c, user)
	if !ok {
		return
	}
	groups, err := models.GroupList()
	if err != nil {
		respondError(c, err)
		return
	}
	form := newPostForm(groups)
	form.Text = post.Text
	if post.GroupID != nil {
		form.Group = *post.GroupID
	}
	render(c, http.StatusOK, "posts/create_post.html", PostFormView{
		Base:   newBase(c, "Edit post"),
		Form:   form,
		IsEdit: true,
		Post:   &post,
	})
}

func PostEdit(c *gin.Context, user *models.User) {
	post, ok := loadOwnPost(c, user)
	if !ok {
		return
	}
	groups, err := models.GroupList()
	if err != nil {
		respondError(c, err)
		return
	}
	form := bindPostForm(c, groups)
	if !form.Valid() {
		render(c, http.StatusOK, "posts/create_post.html", PostFormView{
			Base:   newBase(c, "Edit post"),
			Form:   form,
			IsEdit: true,
			Post:   &post,
		})
		return
	}
	if err = post.Update(form.Text, form.GroupID()); err != nil {
		respondError(c, err)
		return
	}
	events.PostUpdated(&post)
	c.Redirect(http.StatusFound, postURL(post.ID))
}

func postURL(id uint64) string {
	return "/posts/" + strconv.FormatUint(id, 10) + "/"
}
