package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Trunks-api/internal/application/dto"
	"github.com/jhoicas/Trunks-api/internal/domain"
	"github.com/jhoicas/Trunks-api/internal/domain/entity"
	"github.com/jhoicas/Trunks-api/internal/domain/repository"
	"github.com/jhoicas/Trunks-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, verificación de token y siembra del admin.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, now: time.Now}
}

// WithClock reemplaza el reloj usado para emitir y validar tokens.
func (uc *AuthUseCase) WithClock(now func() time.Time) *AuthUseCase {
	uc.now = now
	return uc
}

// Login verifica username/password y emite un JWT.
// Usuario inexistente y password incorrecto devuelven el mismo ErrInvalidLogin.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" {
		return nil, domain.Required("username")
	}
	if in.Password == "" {
		return nil, domain.Required("password")
	}
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidLogin
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidLogin
	}
	ttl := time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute
	token, err := jwt.GenerateAt(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, ttl, uc.now())
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		Role:     user.Role,
		Username: user.Username,
	}, nil
}

// Verify valida firma y expiración del token y vuelve a leer el usuario del store.
// El rol devuelto es el del registro actual, no el del claim: un cambio de rol aplica sin re-login.
func (uc *AuthUseCase) Verify(ctx context.Context, token string) (*entity.User, error) {
	claims, err := jwt.ParseAt(uc.jwtCfg.Secret, token, uc.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, domain.ErrUserNotFound)
	}
	return user, nil
}

// SeedAdmin crea la cuenta "admin" con rol admin si todavía no existe.
// Devuelve true si la creó. Idempotente.
func (uc *AuthUseCase) SeedAdmin(ctx context.Context, password string) (bool, error) {
	if password == "" {
		return false, errors.New("password de admin vacío")
	}
	existing, err := uc.userRepo.GetByUsername(ctx, entity.AdminUsername)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	admin := &entity.User{
		Username:     entity.AdminUsername,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    uc.now(),
	}
	if err := uc.userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// otra instancia lo sembró entre la lectura y el insert
			return false, nil
		}
		return false, err
	}
	return true, nil
}
