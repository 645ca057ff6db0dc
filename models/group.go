package models

import (
	"errors"
	"strings"
	"yatube/db"
	"yatube/utils"

	"gorm.io/gorm"
)

type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Title       string `gorm:"type:varchar(200)"`
	Slug        string `gorm:"type:varchar(100);index:uniq_slug,unique"`
	Description string `gorm:"type:text"`
}

var (
	ErrSlugTaken   = errors.New("a group with this slug already exists")
	ErrEmptyTitle  = errors.New("title is required")
	ErrInvalidSlug = errors.New("slug must contain letters, digits, underscores or hyphens")
)

func GroupBySlug(slug string) (g Group, err error) {
	err = db.Instance.First(&g, "slug = ?", slug).Error
	return
}

func GroupByID(id uint64) (g Group, err error) {
	err = db.Instance.First(&g, id).Error
	return
}

// GroupList returns all groups ordered by title
func GroupList() (groups []Group, err error) {
	err = db.Instance.Order("title ASC, id ASC").Find(&groups).Error
	return
}

// GroupCreate derives the slug from the title when empty
func GroupCreate(title, slug, description string) (g Group, err error) {
	g.Title = strings.TrimSpace(title)
	g.Description = description
	if g.Title == "" {
		return Group{}, ErrEmptyTitle
	}
	g.Slug = strings.TrimSpace(slug)
	if g.Slug == "" {
		g.Slug = utils.Slugify(g.Title)
	}
	if g.Slug == "" || utils.Slugify(g.Slug) != g.Slug {
		return Group{}, ErrInvalidSlug
	}
	if _, err = GroupBySlug(g.Slug); err == nil {
		return Group{}, ErrSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Group{}, err
	}
	if err = db.Instance.Create(&g).Error; err != nil {
		if isDuplicateKey(err) {
			err = ErrSlugTaken
		}
		return Group{}, err
	}
	return g, nil
}

// isDuplicateKey catches unique index races the lookups before Create cannot see.
// db.Open enables TranslateError, so every dialect reports gorm.ErrDuplicatedKey
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
