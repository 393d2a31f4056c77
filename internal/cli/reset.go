package cli

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/solenelark/glowlog/internal/db"
	"github.com/solenelark/glowlog/internal/security"
	"github.com/solenelark/glowlog/internal/services"
)

// RunResetPasswordCommand is the offline escape hatch for a lost password and
// recovery code. It issues a temporary password and a fresh recovery code for
// the account, printing both once.
func RunResetPasswordCommand(dbPath string, email string) error {
	normalizedEmail, err := services.NormalizeEmail(email)
	if err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	users := db.NewUserRepository(database)
	user, found, err := users.FindByNormalizedEmail(normalizedEmail)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if !found {
		return fmt.Errorf("user %s not found", normalizedEmail)
	}

	temporaryPassword, err := generateTemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	recoveryCode, err := security.GenerateRecoveryCode()
	if err != nil {
		return fmt.Errorf("generate recovery code: %w", err)
	}
	recoveryHash, err := bcrypt.GenerateFromPassword([]byte(recoveryCode), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash recovery code: %w", err)
	}

	user.PasswordHash = string(passwordHash)
	user.RecoveryCodeHash = string(recoveryHash)
	if err := users.Save(&user); err != nil {
		return fmt.Errorf("update user credentials: %w", err)
	}

	fmt.Println("Password reset successful")
	fmt.Printf("Temporary password: %s\n", temporaryPassword)
	fmt.Printf("New recovery code:  %s\n", recoveryCode)
	fmt.Println("Change the password after the next login.")

	return nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}

var errEmailRequired = errors.New("email is required")

// ParseResetArgs pulls the target email out of the subcommand arguments.
func ParseResetArgs(args []string) (string, error) {
	if len(args) < 1 || args[0] == "" {
		return "", errEmailRequired
	}
	return args[0], nil
}
