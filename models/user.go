package models

import (
	"errors"
	"strings"
	"yatube/db"
	"yatube/utils"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Username  string  `gorm:"type:varchar(150);index:uniq_username,unique"`
	FirstName string  `gorm:"type:varchar(150)"`
	LastName  string  `gorm:"type:varchar(150)"`
	Email     string  `gorm:"type:varchar(254)"`
	Password  string  `gorm:"type:varchar(128)"`
	PassSalt  string  `gorm:"type:varchar(200)"`
	Grants    []Grant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

type UserCreateRequest struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
}

const saltSize = 60

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("a user with that username already exists")
)

func UserCreate(r UserCreateRequest) (u User, err error) {
	u.Username = strings.TrimSpace(r.Username)
	u.FirstName = r.FirstName
	u.LastName = r.LastName
	u.Email = r.Email
	u.SetPassword(r.Password)
	if _, err = UserByUsername(u.Username); err == nil {
		return User{}, ErrUsernameTaken
	}
	if err = db.Instance.Create(&u).Error; err != nil {
		if isDuplicateKey(err) {
			err = ErrUsernameTaken
		}
		return User{}, err
	}
	return u, nil
}

func (u *User) SetPassword(plainTextPassword string) {
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
}

func UserLogin(username, plainTextPassword string) (u User, err error) {
	result := db.Instance.Preload("Grants").First(&u, "username = ?", username)
	if result.Error != nil {
		return User{}, ErrInvalidCredentials
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func UserByUsername(username string) (u User, err error) {
	err = db.Instance.First(&u, "username = ?", username).Error
	return
}

// FullName falls back to the username
func (u User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

func (u *User) HasPermission(required Permission) bool {
	for _, permission := range u.Grants {
		if permission.Permission == required {
			return true
		}
	}
	return false
}

// HasAnyPermission is true if no permissions are required
func (u *User) HasAnyPermission(permissions ...Permission) bool {
	if len(permissions) == 0 {
		return true
	}
	for _, permission := range permissions {
		if u.HasPermission(permission) {
			return true
		}
	}
	return false
}
