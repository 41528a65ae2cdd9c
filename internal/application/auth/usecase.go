package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/serviceflow/serviceflow-api/internal/application/dto"
	"github.com/serviceflow/serviceflow-api/internal/domain"
	"github.com/serviceflow/serviceflow-api/internal/domain/entity"
	"github.com/serviceflow/serviceflow-api/internal/domain/repository"
	"github.com/serviceflow/serviceflow-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación y gestión de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password, genera JWT y retorna token + rol.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        user.Role,
	}, nil
}

// CreateUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrUsernameAlreadyExists si el username ya está tomado.
func (uc *AuthUseCase) CreateUser(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleTechnician
	}
	if role != entity.RoleAdmin && role != entity.RoleTechnician {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListUsers lista usuarios con paginación.
func (uc *AuthUseCase) ListUsers(limit, offset int) (*dto.UserListResponse, error) {
	users, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.userRepo.Count()
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{Users: make([]dto.UserResponse, 0, len(users)), Total: total}
	for _, u := range users {
		out.Users = append(out.Users, *toUserResponse(u))
	}
	return out, nil
}

// UpdateUser actualiza username y/o rol. Username duplicado -> ErrUsernameAlreadyExists.
func (uc *AuthUseCase) UpdateUser(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Username != nil && *in.Username != user.Username {
		existing, err := uc.userRepo.FindByUsername(*in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrUsernameAlreadyExists
		}
		user.Username = *in.Username
	}
	if in.Role != nil {
		if *in.Role != entity.RoleAdmin && *in.Role != entity.RoleTechnician {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ChangePassword cambia la contraseña de un usuario.
// Si quien la cambia no es admin debe ser el propio usuario y aportar la contraseña actual.
func (uc *AuthUseCase) ChangePassword(targetID, callerID, callerRole string, in dto.PasswordChangeRequest) error {
	if in.NewPassword == "" {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(targetID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if callerRole != entity.RoleAdmin {
		if callerID != targetID {
			return domain.ErrForbidden
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
			return domain.ErrUnauthorized
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return uc.userRepo.Update(user)
}

// DeleteUser elimina un usuario. NotFound si no existe.
func (uc *AuthUseCase) DeleteUser(id string) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.userRepo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
