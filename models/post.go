package models

import (
	"errors"
	"strings"
	"yatube/db"
)

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"index:feed_order"`
	UpdatedAt int64
	Text      string  `gorm:"type:text;not null"`
	AuthorID  uint64  `gorm:"index"`
	Author    User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64 `gorm:"index"`
	Group     *Group  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

var ErrEmptyText = errors.New("post text is required")

// PostCreate stores a new post, `groupID` is optional
func PostCreate(author *User, text string, groupID *uint64) (p Post, err error) {
	if strings.TrimSpace(text) == "" {
		return Post{}, ErrEmptyText
	}
	p.AuthorID = author.ID
	p.Author = *author
	p.Text = text
	p.GroupID = groupID
	if err = db.Instance.Omit("Author", "Group").Create(&p).Error; err != nil {
		return Post{}, err
	}
	return p, p.loadGroup()
}

func PostByID(id uint64) (p Post, err error) {
	err = db.Instance.Preload("Author").Preload("Group").First(&p, id).Error
	return
}

// Update changes text and group only, author and ID never change
func (p *Post) Update(text string, groupID *uint64) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	err := db.Instance.Model(&Post{ID: p.ID}).
		Select("text", "group_id", "updated_at").
		Updates(map[string]interface{}{"text": text, "group_id": groupID}).Error
	if err != nil {
		return err
	}
	p.Text = text
	p.GroupID = groupID
	return p.loadGroup()
}

func (p *Post) loadGroup() error {
	p.Group = nil
	if p.GroupID == nil {
		return nil
	}
	group, err := GroupByID(*p.GroupID)
	if err != nil {
		return err
	}
	p.Group = &group
	return nil
}

// CountPostsByAuthor is always computed, never stored
func CountPostsByAuthor(authorID uint64) (count int64, err error) {
	err = db.Instance.Model(&Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return
}

func CountPosts() (count int64, err error) {
	err = db.Instance.Model(&Post{}).Count(&count).Error
	return
}
