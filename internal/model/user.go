package model

const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleUser       = "user"
)

type User struct {
	ID       uint   `gorm:"primaryKey"`
	NIP      string `gorm:"column:nip;size:18;uniqueIndex;not null"`
	FullName string `gorm:"column:full_name;size:255;not null"`
	Email    string `gorm:"column:email;size:255;not null"`
	Phone    string `gorm:"column:phone;size:50;not null"`
	Password string `gorm:"column:password;size:255;not null"`
	Role     string `gorm:"column:role;size:20;default:user;not null"`
}
