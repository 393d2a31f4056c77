package services

import (
	"errors"
	"net/mail"
	"strings"
	"unicode"

	"github.com/solenelark/glowlog/internal/models"
	"github.com/solenelark/glowlog/internal/security"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidEmail         = errors.New("invalid email")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrWeakPassword         = errors.New("weak password")
	ErrRecoveryCodeNotFound = errors.New("recovery code not found")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, bool, error)
	FindByID(userID uint) (models.User, bool, error)
	Create(user *models.User) error
	Save(user *models.User) error
	ListWithRecoveryCodeHash() ([]models.User, error)
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// ValidatePasswordStrength requires at least 8 characters with both a letter
// and a digit.
func ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < 8 {
		return ErrWeakPassword
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}

	if hasLetter && hasDigit {
		return nil
	}
	return ErrWeakPassword
}

// Register creates a user and returns the account plus its one-time recovery
// code. The code is shown exactly once; only its bcrypt hash is stored.
func (service *AuthService) Register(rawEmail string, password string) (models.User, string, error) {
	email, err := NormalizeEmail(rawEmail)
	if err != nil {
		return models.User{}, "", err
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, "", err
	}

	taken, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, "", err
	}
	if taken {
		return models.User{}, "", ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", err
	}

	code, codeHash, err := generateRecoveryCodeHash()
	if err != nil {
		return models.User{}, "", err
	}

	user := models.User{
		Email:            email,
		PasswordHash:     string(passwordHash),
		RecoveryCodeHash: codeHash,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, "", err
	}
	return user, code, nil
}

func (service *AuthService) Authenticate(rawEmail string, password string) (models.User, error) {
	email, err := NormalizeEmail(rawEmail)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	user, found, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, bool, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) ChangePassword(userID uint, currentPassword string, newPassword string) error {
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(passwordHash)
	return service.users.Save(&user)
}

// RecoverPassword resets the password of the account matching the recovery
// code and rotates the code, returning the replacement. Codes are single-use.
func (service *AuthService) RecoverPassword(rawCode string, newPassword string) (models.User, string, error) {
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return models.User{}, "", err
	}

	code := security.NormalizeRecoveryCode(rawCode)
	user, err := service.findUserByRecoveryCode(code)
	if err != nil {
		return models.User{}, "", err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", err
	}

	freshCode, freshHash, err := generateRecoveryCodeHash()
	if err != nil {
		return models.User{}, "", err
	}

	user.PasswordHash = string(passwordHash)
	user.RecoveryCodeHash = freshHash
	if err := service.users.Save(user); err != nil {
		return models.User{}, "", err
	}
	return *user, freshCode, nil
}

// RegenerateRecoveryCode replaces the stored code hash and returns the new
// code for one-time display.
func (service *AuthService) RegenerateRecoveryCode(userID uint) (string, error) {
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", ErrInvalidCredentials
	}

	code, codeHash, err := generateRecoveryCodeHash()
	if err != nil {
		return "", err
	}
	user.RecoveryCodeHash = codeHash
	if err := service.users.Save(&user); err != nil {
		return "", err
	}
	return code, nil
}

func (service *AuthService) findUserByRecoveryCode(code string) (*models.User, error) {
	users, err := service.users.ListWithRecoveryCodeHash()
	if err != nil {
		return nil, err
	}

	for index := range users {
		hash := strings.TrimSpace(users[index].RecoveryCodeHash)
		if hash == "" {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil {
			return &users[index], nil
		}
	}
	return nil, ErrRecoveryCodeNotFound
}

func generateRecoveryCodeHash() (string, string, error) {
	code, err := security.GenerateRecoveryCode()
	if err != nil {
		return "", "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	return code, string(hash), nil
}
