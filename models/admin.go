package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin account statuses.
const (
	AccountStatusActive   = "Active"
	AccountStatusInActive = "InActive"
)

type Admin struct {
	AdminID  string `json:"id" gorm:"column:admin_id;primaryKey;type:varchar(16)"`
	FullName string `json:"full_name" gorm:"size:255"`
	Email    string `json:"email" gorm:"uniqueIndex;size:150"`
	// Password stores the bcrypt hash, never returned in JSON.
	Password      string `json:"-" gorm:"size:255"`
	AccountStatus string `json:"account_status" gorm:"size:16"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *Admin) Activate() {
	a.AccountStatus = AccountStatusActive
}

func (a *Admin) Deactivate() {
	a.AccountStatus = AccountStatusInActive
}

func (a *Admin) IsActive() bool {
	return a.AccountStatus == AccountStatusActive
}
