package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/crm-pro/pkg/jwt"
)

// fakeUserRepo repositorio de usuarios en memoria.
type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*entity.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeUserRepo) Count() (int, error) {
	return len(r.byID), nil
}

var testJWT = auth.JWTConfig{
	Secret:   "test-secret-key-for-unit-tests",
	ExpHours: 1,
	Issuer:   "crm-pro-test",
}

func newFixture() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return auth.NewAuthUseCase(repo, testJWT), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioConPasswordHasheado(t *testing.T) {
	uc, repo := newFixture()

	out, err := uc.Register(dto.RegisterRequest{
		Name:     "Ana Pérez",
		Email:    "Ana@Example.COM",
		Password: "secreto123",
	})
	require.NoError(t, err)

	assert.Equal(t, "User registered successfully", out.Message)
	assert.Equal(t, "ana@example.com", out.User.Email, "el email se guarda normalizado")
	assert.Equal(t, entity.RoleUser, out.User.Role, "sin rol explícito el usuario es user")
	assert.NotEmpty(t, out.Token)

	// El token emitido debe resolver al usuario creado.
	userID, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)

	// El password nunca se guarda en claro.
	saved, err := repo.FindByID(out.User.ID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.NotEqual(t, "secreto123", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("secreto123")))
}

func TestRegister_EmailYaRegistrado_RetornaError(t *testing.T) {
	uc, _ := newFixture()

	_, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)

	// Mismo email con otra capitalización: sigue siendo duplicado.
	_, err = uc.Register(dto.RegisterRequest{Name: "Ana 2", Email: "ANA@example.com", Password: "otro456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RolAdminExplicito_SeRespeta(t *testing.T) {
	uc, _ := newFixture()

	out, err := uc.Register(dto.RegisterRequest{
		Name: "Root", Email: "root@example.com", Password: "secreto123", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas_EmiteToken(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)

	assert.Equal(t, "Login successful", out.Message)
	assert.NotEmpty(t, out.Token)
}

// Email desconocido y password incorrecto producen exactamente el mismo error:
// el cliente no puede enumerar credenciales.
func TestLogin_EmailDesconocidoYPasswordIncorrecto_MismoError(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)

	_, errUnknown := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "secreto123"})
	_, errBadPass := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})

	assert.ErrorIs(t, errUnknown, domain.ErrUnauthorized)
	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
	assert.Equal(t, errUnknown, errBadPass)
}

func TestLogin_EmailConOtraCapitalizacion_Funciona(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.Register(dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "  ANA@Example.com ", Password: "secreto123"})
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListUsers
// ──────────────────────────────────────────────────────────────────────────────

func TestListUsers_PaginacionConDefaults(t *testing.T) {
	uc, _ := newFixture()
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := uc.Register(dto.RegisterRequest{Name: "Usuario", Email: email, Password: "secreto123"})
		require.NoError(t, err)
	}

	out, err := uc.ListUsers(dto.UserListQuery{})
	require.NoError(t, err)

	assert.Len(t, out.Users, 3)
	assert.Equal(t, 1, out.Pagination.Page)
	assert.Equal(t, 10, out.Pagination.Limit)
	assert.Equal(t, 3, out.Pagination.Total)
	assert.Equal(t, 1, out.Pagination.Pages)
}
