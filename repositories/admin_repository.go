package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"frontdesk-backend/models"
)

var ErrAdminNotFound = errors.New("admin account not found")

// AdminRepository encapsulates retrieval/persistence of admin accounts.
type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) LoadByID(id string) (models.Admin, error) {
	var admin models.Admin
	if err := r.DB.First(&admin, "admin_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return admin, ErrAdminNotFound
		}
		return admin, fmt.Errorf("load admin %s: %w", id, err)
	}
	return admin, nil
}

func (r *AdminRepository) LoadByEmail(email string) (models.Admin, error) {
	var admin models.Admin
	if err := r.DB.First(&admin, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return admin, ErrAdminNotFound
		}
		return admin, fmt.Errorf("load admin by email: %w", err)
	}
	return admin, nil
}

func (r *AdminRepository) ListAll() ([]models.Admin, error) {
	var admins []models.Admin
	if err := r.DB.Order("full_name").Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

func (r *AdminRepository) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.DB.Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check admin email: %w", err)
	}
	return count > 0, nil
}

// EmailExistsExcluding reports whether the email is in use by an account
// other than the one identified by id.
func (r *AdminRepository) EmailExistsExcluding(email, id string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Admin{}).
		Where("email = ? AND admin_id <> ?", email, id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check admin email elsewhere: %w", err)
	}
	return count > 0, nil
}

func (r *AdminRepository) Save(admin *models.Admin) error {
	if err := r.DB.Create(admin).Error; err != nil {
		return fmt.Errorf("save admin: %w", err)
	}
	return nil
}

func (r *AdminRepository) Update(admin *models.Admin) error {
	result := r.DB.Model(&models.Admin{}).Where("admin_id = ?", admin.AdminID).
		Select("FullName", "Email", "AccountStatus").
		Updates(admin)
	if result.Error != nil {
		return fmt.Errorf("update admin %s: %w", admin.AdminID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAdminNotFound
	}
	return nil
}

func (r *AdminRepository) UpdatePassword(id, passwordHash string) error {
	result := r.DB.Model(&models.Admin{}).Where("admin_id = ?", id).
		Update("password", passwordHash)
	if result.Error != nil {
		return fmt.Errorf("update admin password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAdminNotFound
	}
	return nil
}
