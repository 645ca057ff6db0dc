package models

import (
	"yatube/config"
	"yatube/db"
	"yatube/paging"

	"gorm.io/gorm"
)

// FeedFilter narrows the global feed, nil fields don't filter
type FeedFilter struct {
	GroupID  *uint64
	AuthorID *uint64
}

// feedOrder is newest first; IDs are monotonic so they break ties within the same second
const feedOrder = "posts.created_at DESC, posts.id DESC"

func (f FeedFilter) query() *gorm.DB {
	tx := db.Instance.Model(&Post{})
	if f.GroupID != nil {
		tx = tx.Where("posts.group_id = ?", *f.GroupID)
	}
	if f.AuthorID != nil {
		tx = tx.Where("posts.author_id = ?", *f.AuthorID)
	}
	return tx
}

// LoadFeed returns page `number` of the filtered feed using config.PAGINATOR posts per page
func LoadFeed(filter FeedFilter, number int) (page paging.Page[Post], err error) {
	return LoadFeedPage(filter, number, config.PAGINATOR)
}

func LoadFeedPage(filter FeedFilter, number, size int) (page paging.Page[Post], err error) {
	var total int64
	if err = filter.query().Count(&total).Error; err != nil {
		return
	}
	page = paging.Page[Post]{Number: number, Size: size, Total: total}
	if number < 1 {
		page.Number = 1
	}
	if size < 1 {
		page.Size = 1
	}
	if lo, hi := paging.Bounds(total, page.Number, page.Size); lo == hi {
		return // past the end, nothing to fetch
	}
	posts := []Post{}
	err = filter.query().
		Preload("Author").
		Preload("Group").
		Order(feedOrder).
		Scopes(paging.Scope(total, page.Number, page.Size)).
		Find(&posts).Error
	page.Items = posts
	return
}

