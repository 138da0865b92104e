// Command createtoken prints an access token for a back-office user, for
// scripting against the API. With -password it first creates the admin
// account when the email is unknown.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/config"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/user"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/database"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/backoffice-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	email := flag.String("email", "", "email of the user the token is issued for")
	password := flag.String("password", "", "create the user as admin with this password when missing")
	ttl := flag.Duration("ttl", 0, "token lifetime (default: JWT_ACCESS_EXPIRATION_TIME)")
	flag.Parse()

	if strings.TrimSpace(*email) == "" {
		flag.Usage()
		os.Exit(2)
	}

	token, err := run(*email, *password, *ttl)
	if err != nil {
		slog.Error("Failed to create token", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}

func run(email, password string, ttl time.Duration) (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("error loading config: %w", err)
	}
	if ttl <= 0 {
		ttl = cfg.JWT.AccessExpiration
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{MaxConns: 1})
	if err != nil {
		return "", fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)

	account, err := userRepo.GetByEmail(ctx, email)
	if errors.Is(err, user.ErrUserNotFound) && password != "" {
		account, err = createAdmin(ctx, userRepo, email, password)
	}
	if err != nil {
		return "", err
	}

	token, _, err := jwt.NewJWTService(cfg.JWT.Secret, ttl).GenerateAccessToken(account.ID, account.Email, account.Role)
	if err != nil {
		return "", fmt.Errorf("failed to create access token: %w", err)
	}
	return token, nil
}

func createAdmin(ctx context.Context, userRepo user.UserRepository, email, password string) (user.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	account, err := userRepo.Create(ctx, user.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: &hashed,
		Role:         user.RoleAdmin,
	})
	if err != nil {
		return user.User{}, err
	}
	slog.Info("Admin user created", "email", account.Email)
	return account, nil
}
