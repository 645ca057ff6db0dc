package handlers

import (
	"errors"
	"log"
	"net/http"
	"yatube/config"
	"yatube/models"
	"yatube/paging"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type GroupInfo struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type GroupCreateRequest struct {
	Title       string `form:"title" binding:"required"`
	Slug        string `form:"slug"`
	Description string `form:"description"`
}

func NewGroupInfo(g *models.Group) GroupInfo {
	return GroupInfo{
		ID:          g.ID,
		Title:       g.Title,
		Slug:        g.Slug,
		Description: g.Description,
	}
}

// GroupList pages through the (few) groups in memory
func GroupList(c *gin.Context) {
	groups, err := models.GroupList()
	if err != nil {
		log.Printf("GroupList: %v", err)
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	page := paging.Paginate(groups, paging.ParseNumber(c.Query("page")), config.PAGINATOR)
	result := ListResponse[GroupInfo]{
		Count:    page.Total,
		NumPages: page.NumPages(),
		Page:     page.Number,
		Results:  []GroupInfo{},
	}
	for i := range page.Items {
		result.Results = append(result.Results, NewGroupInfo(&page.Items[i]))
	}
	c.JSON(http.StatusOK, result)
}

func GroupCreate(c *gin.Context, user *models.User) {
	r := GroupCreateRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	group, err := models.GroupCreate(r.Title, r.Slug, r.Description)
	if errors.Is(err, models.ErrSlugTaken) {
		c.JSON(http.StatusConflict, SlugTakenResponse)
		return
	} else if errors.Is(err, models.ErrInvalidSlug) || errors.Is(err, models.ErrEmptyTitle) {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	} else if err != nil {
		log.Printf("GroupCreate by %s: %v", user.Username, err)
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	log.Printf("Group %s created by %s", group.Slug, user.Username)
	c.JSON(http.StatusOK, NewGroupInfo(&group))
}
