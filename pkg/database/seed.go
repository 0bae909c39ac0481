package database

import (
	"github.com/surdiana/worklog/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultAdmin defines the default admin user credentials
type DefaultAdmin struct {
	NIP      string
	FullName string
	Email    string
	Phone    string
	Password string
}

// GetDefaultAdmin returns the default admin user
func GetDefaultAdmin() DefaultAdmin {
	return DefaultAdmin{
		NIP:      "000000000000000001",
		FullName: "Administrator",
		Email:    "admin@worklog.local",
		Phone:    "+6281234567890",
		Password: "Admin@123", // Change this in production!
	}
}

// Seed creates initial data for the database
func Seed(db *gorm.DB) error {
	return SeedUsers(db)
}

// SeedUsers creates the default admin user if not exists
func SeedUsers(db *gorm.DB) error {
	admin := GetDefaultAdmin()

	// Check if admin user already exists
	var existingUser model.User
	result := db.Where("nip = ?", admin.NIP).First(&existingUser)

	if result.Error == nil {
		// User already exists, skip seeding
		return nil
	}

	if result.Error != gorm.ErrRecordNotFound {
		// Unexpected error
		return result.Error
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// Create the admin user
	user := model.User{
		NIP:      admin.NIP,
		FullName: admin.FullName,
		Email:    admin.Email,
		Phone:    admin.Phone,
		Password: string(hashedPassword),
		Role:     model.RoleSuperAdmin,
	}

	return db.Create(&user).Error
}
