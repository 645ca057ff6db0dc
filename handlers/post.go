package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"yatube/models"
	"yatube/paging"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostInfo struct {
	ID      uint64 `json:"id"`
	Text    string `json:"text"`
	Author  string `json:"author"`
	Group   string `json:"group,omitempty"` // slug
	Created int64  `json:"created"`
}

type PostListRequest struct {
	Page   string `form:"page"`
	Group  string `form:"group"`
	Author string `form:"author"`
}

func NewPostInfo(p *models.Post) PostInfo {
	info := PostInfo{
		ID:      p.ID,
		Text:    p.Text,
		Author:  p.Author.Username,
		Created: p.CreatedAt,
	}
	if p.Group != nil {
		info.Group = p.Group.Slug
	}
	return info
}

// PostList returns one page of the global, group (?group=slug) or author (?author=username) feed
func PostList(c *gin.Context) {
	r := PostListRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	filter := models.FeedFilter{}
	if r.Group != "" {
		group, err := models.GroupBySlug(r.Group)
		if err != nil {
			notFoundOr500(c, err, DBError1Response)
			return
		}
		filter.GroupID = &group.ID
	}
	if r.Author != "" {
		author, err := models.UserByUsername(r.Author)
		if err != nil {
			notFoundOr500(c, err, DBError2Response)
			return
		}
		filter.AuthorID = &author.ID
	}
	page, err := models.LoadFeed(filter, paging.ParseNumber(r.Page))
	if err != nil {
		log.Printf("PostList: %v", err)
		c.JSON(http.StatusInternalServerError, DBError3Response)
		return
	}
	result := ListResponse[PostInfo]{
		Count:    page.Total,
		NumPages: page.NumPages(),
		Page:     page.Number,
		Results:  []PostInfo{},
	}
	for i := range page.Items {
		result.Results = append(result.Results, NewPostInfo(&page.Items[i]))
	}
	c.JSON(http.StatusOK, result)
}

func PostGet(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		notFoundOr500(c, err, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, NewPostInfo(&post))
}

func notFoundOr500(c *gin.Context, err error, dbError Response) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	log.Printf("%s: %v", c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, dbError)
}
