package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"frontdesk-backend/models"
	"frontdesk-backend/repositories"
	"frontdesk-backend/utils"
)

// ErrInvalidCredentials masks both unknown-email and wrong-password so
// the login response does not leak which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken marks an admin create/update naming an email already in use.
var ErrEmailTaken = errors.New("email already in use")

type CreateAdminInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateAdminInput struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	AccountStatus string `json:"account_status"`
	UpdatedBy     string `json:"updated_by"`
}

type UpdatePasswordInput struct {
	Email       string `json:"email"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// AdminService manages admin accounts and authenticates logins.
type AdminService struct {
	Admins *repositories.AdminRepository
	JWT    *JWTService
}

func NewAdminService(admins *repositories.AdminRepository, jwt *JWTService) *AdminService {
	return &AdminService{Admins: admins, JWT: jwt}
}

// Create adds an active admin account with a bcrypt password hash.
func (s *AdminService) Create(input CreateAdminInput) (models.Admin, error) {
	var admin models.Admin

	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return admin, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	taken, err := s.Admins.EmailExists(email)
	if err != nil {
		return admin, err
	}
	if taken {
		return admin, fmt.Errorf("%w: %s", ErrEmailTaken, email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return admin, fmt.Errorf("hash password: %w", err)
	}

	id, err := utils.NewAdminID()
	if err != nil {
		return admin, fmt.Errorf("generate admin id: %w", err)
	}

	admin = models.Admin{
		AdminID:  id,
		FullName: strings.TrimSpace(input.FullName),
		Email:    email,
		Password: string(hash),
	}
	admin.Activate()

	if err := s.Admins.Save(&admin); err != nil {
		return admin, err
	}
	return admin, nil
}

func (s *AdminService) Get(id string) (models.Admin, error) {
	return s.Admins.LoadByID(id)
}

func (s *AdminService) GetAll() ([]models.Admin, error) {
	return s.Admins.ListAll()
}

// UpdateDetails edits name, email, and account status. Status may only
// be Active or InActive.
func (s *AdminService) UpdateDetails(id string, input UpdateAdminInput) (models.Admin, error) {
	admin, err := s.Admins.LoadByID(id)
	if err != nil {
		return admin, err
	}

	email := strings.TrimSpace(input.Email)
	taken, err := s.Admins.EmailExistsExcluding(email, id)
	if err != nil {
		return admin, err
	}
	if taken {
		return admin, fmt.Errorf("%w: %s", ErrEmailTaken, email)
	}

	admin.FullName = strings.TrimSpace(input.FullName)
	admin.Email = email

	switch input.AccountStatus {
	case models.AccountStatusActive:
		admin.Activate()
	case models.AccountStatusInActive:
		admin.Deactivate()
	default:
		return admin, fmt.Errorf("%w: status may only be Active or InActive", ErrInvalidInput)
	}

	if err := s.Admins.Update(&admin); err != nil {
		return admin, err
	}
	return admin, nil
}

// UpdatePassword verifies the old password before storing a new hash.
func (s *AdminService) UpdatePassword(input UpdatePasswordInput) error {
	admin, err := s.Admins.LoadByEmail(strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.OldPassword)) != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.Admins.UpdatePassword(admin.AdminID, string(hash))
}

// Login authenticates an active admin and issues a JWT.
func (s *AdminService) Login(email, password string) (models.Admin, string, error) {
	var admin models.Admin

	admin, err := s.Admins.LoadByEmail(strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return admin, "", ErrInvalidCredentials
		}
		return admin, "", err
	}

	if !admin.IsActive() {
		return admin, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return admin, "", ErrInvalidCredentials
	}

	token, err := s.JWT.IssueToken(admin.AdminID)
	if err != nil {
		return admin, "", err
	}
	return admin, token, nil
}
