package models

import "yatube/db"

type Permission uint8

const (
	PermissionNone            Permission = 0
	PermissionAdmin           Permission = 1
	PermissionCanCreateGroups Permission = 3
)

type Grant struct {
	ID         uint64 `gorm:"primaryKey"`
	CreatedAt  int64
	GrantorID  *uint64
	UserID     uint64     `gorm:"index:user_permission,unique"`
	Permission Permission `gorm:"index:user_permission,unique"`
}

// Grant gives a permission to the user, `grantor` is nil for system grants
func (u *User) Grant(permission Permission, grantor *User) error {
	grant := Grant{
		UserID:     u.ID,
		Permission: permission,
	}
	if grantor != nil {
		grant.GrantorID = &grantor.ID
	}
	if err := db.Instance.Create(&grant).Error; err != nil {
		return err
	}
	u.Grants = append(u.Grants, grant)
	return nil
}
