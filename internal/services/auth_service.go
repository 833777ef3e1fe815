package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gainablefr/gainable-backend/internal/config"
	"github.com/gainablefr/gainable-backend/internal/content"
	"github.com/gainablefr/gainable-backend/internal/dto"
	"github.com/gainablefr/gainable-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPlan        = errors.New("unknown membership plan")
	ErrInvalidSiret       = errors.New("siret must be 14 digits")
	ErrAPEMismatch        = errors.New("code APE does not match the selected plan")
)

// apeAllowList maps each membership tier to its valid APE code prefixes
// (dots stripped). Enforced strictly for France, advisory elsewhere.
var apeAllowList = map[string][]string{
	models.ExpertTypeCVC:   {"4322", "4329", "3320"},
	models.ExpertTypeEtude: {"7111", "7112", "7490"},
	models.ExpertTypeDiag:  {"7120", "7112"},
}

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Register creates the User and its pending Expert profile in one
// transaction. Paid tiers stay pending until the Stripe webhook (or an
// admin) activates them; the free bureau d'étude tier stays pending until
// manual review.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if len(req.Email) == 0 || len(req.Password) < 8 {
		return nil, errors.New("email required and password must be at least 8 characters")
	}
	if !models.IsValidExpertType(req.Plan) {
		return nil, ErrInvalidPlan
	}
	if strings.TrimSpace(req.NomEntreprise) == "" {
		return nil, errors.New("nom_entreprise is required")
	}

	pays := req.Pays
	if pays == "" {
		pays = "France"
	}
	isFrance := strings.EqualFold(pays, "france")

	if isFrance && !isValidSiret(req.Siret) {
		return nil, ErrInvalidSiret
	}

	apeWarning := ""
	if req.CodeAPE != "" && !apeMatchesPlan(req.CodeAPE, req.Plan) {
		if isFrance {
			return nil, ErrAPEMismatch
		}
		apeWarning = fmt.Sprintf("code APE %s is unusual for this plan", req.CodeAPE)
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	slug, err := s.uniqueExpertSlug(req.NomEntreprise, req.Ville)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hash),
		Role:     "expert",
	}
	expert := models.Expert{
		ID:            uuid.New(),
		UserID:        user.ID,
		NomEntreprise: req.NomEntreprise,
		Description:   req.Description,
		Siret:         req.Siret,
		CodeAPE:       req.CodeAPE,
		Adresse:       req.Adresse,
		CodePostal:    req.CodePostal,
		Ville:         req.Ville,
		Pays:          pays,
		Telephone:     req.Telephone,
		EmailContact:  req.Email,
		ExpertType:    req.Plan,
		Slug:          slug,
		Status:        models.ExpertStatusPending,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		if err := tx.Create(&expert).Error; err != nil {
			return fmt.Errorf("failed to create expert: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		ExpertID:   expert.ID,
		Slug:       expert.Slug,
		Status:     expert.Status,
		APEWarning: apeWarning,
	}, nil
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.generateTokenPair(&user)
}

func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = false", tokenHash).First(&stored).Error; err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return nil, ErrInvalidToken
	}

	s.db.Model(&stored).Update("revoked", true)

	var user models.User
	if err := s.db.First(&user, "id = ?", stored.UserID).Error; err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	return s.generateTokenPair(&user)
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	tokenHash := hashToken(req.RefreshToken)
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

// DeleteAccount removes the user, their expert profile and everything
// hanging off it. Lead recipient rows are kept: the lead history belongs to
// the visitors who submitted it.
func (s *AuthService) DeleteAccount(userID uuid.UUID, password string) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return ErrUserNotFound
	}

	if password == "" {
		return errors.New("password is required")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var expert models.Expert
		if err := tx.Where("user_id = ?", userID).First(&expert).Error; err == nil {
			tx.Where("expert_id = ?", expert.ID).Delete(&models.ExpertTechnology{})
			tx.Where("expert_id = ?", expert.ID).Delete(&models.ExpertInterventionClim{})
			tx.Where("expert_id = ?", expert.ID).Delete(&models.ExpertInterventionEtude{})
			tx.Where("expert_id = ?", expert.ID).Delete(&models.ExpertInterventionDiag{})
			tx.Where("expert_id = ?", expert.ID).Delete(&models.ExpertBatiment{})
			tx.Where("expert_id = ?", expert.ID).Delete(&models.ExpertMarque{})
			tx.Where("expert_id = ?", expert.ID).Delete(&models.ExpertCertification{})
			tx.Where("expert_id = ?", expert.ID).Delete(&models.ExpertPhoto{})
			tx.Where("expert_id = ?", expert.ID).Delete(&models.Article{})
			tx.Delete(&expert)
		}
		tx.Where("user_id = ?", userID).Delete(&models.RefreshToken{})
		return tx.Delete(&user).Error
	})
}

func (s *AuthService) generateTokenPair(user *models.User) (*dto.AuthResponse, error) {
	var expertID *uuid.UUID
	var expert models.Expert
	if err := s.db.Where("user_id = ?", user.ID).First(&expert).Error; err == nil {
		expertID = &expert.ID
	}

	accessToken, err := s.generateAccessToken(user, expertID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			Role:     user.Role,
			ExpertID: expertID,
		},
	}, nil
}

func (s *AuthService) generateAccessToken(user *models.User, expertID *uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}
	if expertID != nil {
		claims["expert_id"] = expertID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(user *models.User) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)
	tokenHash := hashToken(rawToken)

	record := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

// uniqueExpertSlug derives the public URL segment from the company name,
// suffixing the city then a counter until it is free.
func (s *AuthService) uniqueExpertSlug(nomEntreprise, ville string) (string, error) {
	base := content.Slugify(nomEntreprise)
	if base == "" {
		base = "expert"
	}

	candidates := []string{base}
	if ville != "" {
		candidates = append(candidates, base+"-"+content.Slugify(ville))
	}
	for i := 2; i <= 50; i++ {
		candidates = append(candidates, fmt.Sprintf("%s-%d", base, i))
	}

	for _, candidate := range candidates {
		var count int64
		if err := s.db.Model(&models.Expert{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", errors.New("could not derive a unique slug")
}

func isValidSiret(siret string) bool {
	if len(siret) != 14 {
		return false
	}
	for _, r := range siret {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func apeMatchesPlan(codeAPE, plan string) bool {
	normalized := strings.ToUpper(strings.ReplaceAll(codeAPE, ".", ""))
	for _, prefix := range apeAllowList[plan] {
		if strings.HasPrefix(normalized, prefix) {
			return true
		}
	}
	return false
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
