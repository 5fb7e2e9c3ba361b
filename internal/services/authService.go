package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/utils"
)

// AuthService verifies admin credentials. Every login attempt resolves to a
// LoginResult; failures never propagate to the handler as errors.
type AuthService interface {
	VerifyLogin(ctx context.Context, creds *models.Login) *models.LoginResult
	GetAdminProfile(ctx context.Context, adminID primitive.ObjectID) (*models.Admin, error)
}

type authService struct {
	adminRepo        repositories.AdminRepository
	recaptcha        RecaptchaVerifier
	recaptchaEnabled bool
}

func NewAuthService(adminRepo repositories.AdminRepository, recaptcha RecaptchaVerifier, cfg RecaptchaConfig) AuthService {
	return &authService{
		adminRepo:        adminRepo,
		recaptcha:        recaptcha,
		recaptchaEnabled: cfg.Enabled,
	}
}

// VerifyLogin runs the login pipeline as an ordered list of guard clauses:
// field presence, reCAPTCHA gate, account lookup (exact match first, then
// an anchored case-insensitive fallback for mixed-case stored emails), hash
// format check, bcrypt comparison. A missing account and a wrong password
// produce the same outcome so registered emails cannot be enumerated.
func (s *authService) VerifyLogin(ctx context.Context, creds *models.Login) *models.LoginResult {
	log.Debug().Str("email", creds.Email).Msg("Attempting admin login")

	if creds.Email == "" || creds.Password == "" {
		log.Warn().Msg("Email and password are required for login")
		return &models.LoginResult{Outcome: models.LoginMissingFields}
	}

	if s.recaptchaEnabled {
		if creds.RecaptchaToken == "" {
			log.Warn().Str("email", creds.Email).Msg("Missing reCAPTCHA token during login attempt")
			return &models.LoginResult{Outcome: models.LoginBotCheckRequired}
		}

		ok, err := s.recaptcha.Verify(ctx, creds.RecaptchaToken)
		if err != nil {
			log.Error().Err(err).Msg("Failed to verify reCAPTCHA token")
			return &models.LoginResult{Outcome: models.LoginInternalError}
		}
		if !ok {
			log.Warn().Str("email", creds.Email).Msg("reCAPTCHA verification failed during login attempt")
			return &models.LoginResult{Outcome: models.LoginBotCheckFailed}
		}
	}

	normalizedEmail := strings.ToLower(strings.TrimSpace(creds.Email))

	admin, err := s.adminRepo.FindByEmail(ctx, normalizedEmail)
	if err == mongo.ErrNoDocuments {
		// Accounts stored with mixed-case emails are still reachable.
		admin, err = s.adminRepo.FindByEmailFold(ctx, strings.TrimSpace(creds.Email))
	}
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Warn().Str("email", normalizedEmail).Msg("Invalid credentials during login attempt")
			return &models.LoginResult{Outcome: models.LoginInvalidCredentials}
		}
		log.Error().Err(err).Str("email", normalizedEmail).Msg("Error finding admin for login")
		return &models.LoginResult{Outcome: models.LoginInternalError}
	}

	if !isBcryptHash(admin.Password) {
		log.Error().Str("admin_id", admin.ID.Hex()).Msg("Stored password is missing or not a bcrypt hash")
		return &models.LoginResult{Outcome: models.LoginAccountMisconfigured}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(creds.Password)); err != nil {
		log.Warn().Str("email", normalizedEmail).Msg("Invalid credentials (password mismatch) during login attempt")
		return &models.LoginResult{Outcome: models.LoginInvalidCredentials}
	}

	token, err := utils.GenerateJWT(admin.ID)
	if err != nil {
		log.Error().Err(err).Str("admin_id", admin.ID.Hex()).Msg("Could not generate token for admin")
		return &models.LoginResult{Outcome: models.LoginInternalError}
	}

	admin.Password = "" // Clear hash before returning
	log.Info().Str("admin_id", admin.ID.Hex()).Msg("Admin logged in successfully")
	return &models.LoginResult{Outcome: models.LoginSuccess, Admin: admin, Token: token}
}

func (s *authService) GetAdminProfile(ctx context.Context, adminID primitive.ObjectID) (*models.Admin, error) {
	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Warn().Str("admin_id", adminID.Hex()).Msg("Admin not found for profile fetch")
			return nil, fmt.Errorf("admin not found")
		}
		log.Error().Err(err).Str("admin_id", adminID.Hex()).Msg("Failed to fetch admin profile")
		return nil, fmt.Errorf("failed to fetch admin profile")
	}

	admin.Password = ""
	return admin, nil
}

func isBcryptHash(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") ||
		strings.HasPrefix(hash, "$2b$") ||
		strings.HasPrefix(hash, "$2y$")
}
