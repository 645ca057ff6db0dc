package models

import (
	"log"
	"yatube/db"
)

func Init() {
	if err := Migrate(); err != nil {
		panic(err)
	}
}

func Migrate() error {
	return db.Instance.AutoMigrate(&User{}, &Grant{}, &Group{}, &Post{})
}

// EnsureAdmin creates the configured admin account on first start
func EnsureAdmin(username, password string) {
	if username == "" || password == "" {
		return
	}
	if _, err := UserByUsername(username); err == nil {
		return
	}
	user, err := UserCreate(UserCreateRequest{Username: username, Password: password})
	if err != nil {
		log.Printf("Cannot create admin %s: %v", username, err)
		return
	}
	if err = user.Grant(PermissionAdmin, nil); err != nil {
		log.Printf("Cannot grant admin to %s: %v", username, err)
		return
	}
	log.Printf("Created admin user %s", username)
}
