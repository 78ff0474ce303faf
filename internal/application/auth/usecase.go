package auth

import (
	"context"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/application/ports"
	"github.com/jhoicas/inventario-equipos/internal/domain"
	"github.com/jhoicas/inventario-equipos/internal/domain/repository"
	"github.com/jhoicas/inventario-equipos/pkg/jwt"
)

// AuthUseCase caso de uso de autenticación: login con email y password.
type AuthUseCase struct {
	userRepo repository.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, hasher: hasher, tokens: tokens}
}

// Login verifica email/password y emite el token de acceso.
// Email inexistente y password incorrecto devuelven el mismo ErrInvalidCredentials.
// El estado del usuario no se evalúa: un usuario Inactivo también puede autenticarse.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Email = dto.NormalizeEmail(in.Email)
	if err := dto.Validate(&in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !uc.hasher.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := uc.tokens.Issue(jwt.Subject{UserID: user.ID, Role: user.Role})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		ID:          user.ID,
		Name:        user.Name,
		Role:        user.Role,
		Email:       user.Email,
		AccessToken: token,
	}, nil
}
