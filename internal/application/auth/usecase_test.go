package auth_test

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/serviceflow/serviceflow-api/internal/application/auth"
	"github.com/serviceflow/serviceflow-api/internal/application/dto"
	"github.com/serviceflow/serviceflow-api/internal/domain"
	"github.com/serviceflow/serviceflow-api/internal/domain/entity"
)

type fakeUserRepo struct {
	users   map[string]*entity.User
	findErr error // error simulado de FindByUsername
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}
func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}
func (r *fakeUserRepo) Count() (int, error)    { return len(r.users), nil }
func (r *fakeUserRepo) Delete(id string) error { delete(r.users, id); return nil }

func buildUseCase() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secreto-de-prueba",
		ExpMinutes: 30,
		Issuer:     "serviceflow-test",
	})
	return uc, repo
}

func seedUser(t *testing.T, repo *fakeUserRepo, id, username, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(&entity.User{
		ID: id, Username: username, PasswordHash: string(hash), Role: role,
	}))
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc, repo := buildUseCase()
	seedUser(t, repo, "u1", "tecnico1", "clave123", entity.RoleTechnician)

	out, err := uc.Login(dto.LoginRequest{Username: "tecnico1", Password: "clave123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, entity.RoleTechnician, out.Role)

	// El token lleva las claims de identidad.
	parsed, err := jwt.Parse(out.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte("secreto-de-prueba"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "tecnico1", claims["username"])
	assert.Equal(t, entity.RoleTechnician, claims["role"])
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, repo := buildUseCase()
	seedUser(t, repo, "u1", "tecnico1", "clave123", entity.RoleTechnician)

	_, err := uc.Login(dto.LoginRequest{Username: "tecnico1", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := buildUseCase()
	_, err := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCreateUser_RolPorDefectoTechnician(t *testing.T) {
	uc, _ := buildUseCase()

	out, err := uc.CreateUser(dto.CreateUserRequest{Username: "nuevo", Password: "clave123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleTechnician, out.Role)
}

func TestCreateUser_UsernameTomado(t *testing.T) {
	uc, repo := buildUseCase()
	seedUser(t, repo, "u1", "tecnico1", "clave123", entity.RoleTechnician)

	_, err := uc.CreateUser(dto.CreateUserRequest{Username: "tecnico1", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

func TestCreateUser_RolDesconocido(t *testing.T) {
	uc, _ := buildUseCase()
	_, err := uc.CreateUser(dto.CreateUserRequest{Username: "x", Password: "y", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateUser_PropagaErrorDelRepositorio(t *testing.T) {
	uc, repo := buildUseCase()
	repo.findErr = errors.New("conexión perdida")

	// Un fallo al verificar el username no puede leerse como "disponible".
	_, err := uc.CreateUser(dto.CreateUserRequest{Username: "nuevo", Password: "clave123"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "conexión perdida")
	assert.Empty(t, repo.users)
}

func TestUpdateUser_PropagaErrorDelRepositorio(t *testing.T) {
	uc, repo := buildUseCase()
	seedUser(t, repo, "u1", "tecnico1", "clave123", entity.RoleTechnician)
	repo.findErr = errors.New("conexión perdida")

	nuevo := "otro"
	_, err := uc.UpdateUser("u1", dto.UpdateUserRequest{Username: &nuevo})
	require.Error(t, err)
	assert.ErrorContains(t, err, "conexión perdida")
}

func TestCreateUser_GuardaHashNoLaClave(t *testing.T) {
	uc, repo := buildUseCase()

	out, err := uc.CreateUser(dto.CreateUserRequest{Username: "nuevo", Password: "clave123"})
	require.NoError(t, err)

	stored, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "clave123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave123")))
}

func TestChangePassword_TecnicoSoloLaPropia(t *testing.T) {
	uc, repo := buildUseCase()
	seedUser(t, repo, "u1", "tecnico1", "clave123", entity.RoleTechnician)
	seedUser(t, repo, "u2", "tecnico2", "clave456", entity.RoleTechnician)

	err := uc.ChangePassword("u2", "u1", entity.RoleTechnician, dto.PasswordChangeRequest{
		CurrentPassword: "clave123",
		NewPassword:     "nueva",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestChangePassword_TecnicoRequiereClaveActual(t *testing.T) {
	uc, repo := buildUseCase()
	seedUser(t, repo, "u1", "tecnico1", "clave123", entity.RoleTechnician)

	err := uc.ChangePassword("u1", "u1", entity.RoleTechnician, dto.PasswordChangeRequest{
		CurrentPassword: "incorrecta",
		NewPassword:     "nueva",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = uc.ChangePassword("u1", "u1", entity.RoleTechnician, dto.PasswordChangeRequest{
		CurrentPassword: "clave123",
		NewPassword:     "nueva",
	})
	assert.NoError(t, err)
}

func TestChangePassword_AdminSinClaveActual(t *testing.T) {
	uc, repo := buildUseCase()
	seedUser(t, repo, "u1", "tecnico1", "clave123", entity.RoleTechnician)

	err := uc.ChangePassword("u1", "admin-id", entity.RoleAdmin, dto.PasswordChangeRequest{
		NewPassword: "impuesta",
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "tecnico1", Password: "impuesta"})
	assert.NoError(t, err)
}

func TestDeleteUser_NoExiste(t *testing.T) {
	uc, _ := buildUseCase()
	assert.ErrorIs(t, uc.DeleteUser("no-existe"), domain.ErrUserNotFound)
}
