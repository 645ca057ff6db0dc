package auth

import (
	"yatube/db"
	"yatube/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	userIdKey = "id"
	viewerKey = "viewer"
)

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) LoginUser(user *models.User) error {
	s.Clear()
	s.Set(userIdKey, user.ID)
	return s.Save()
}

func (s *Session) LogoutUser() {
	s.Delete(userIdKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	s.Save()
}

func (s *Session) UserID() uint64 {
	id, _ := s.Get(userIdKey).(uint64)
	return id
}

// User returns the logged in user, or a zero User (ID == 0) for guests
func (s *Session) User() (user models.User) {
	id := s.UserID()
	if id == 0 {
		return
	}
	user.ID = id
	if db.Instance.Preload("Grants").First(&user).Error != nil {
		user = models.User{}
	}
	return
}

// Viewer is the current user, loaded once per request
func Viewer(c *gin.Context) models.User {
	if v, ok := c.Get(viewerKey); ok {
		return v.(models.User)
	}
	user := LoadSession(c).User()
	c.Set(viewerKey, user)
	return user
}
