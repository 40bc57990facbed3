package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caixalivre/pdv-api/internal/application/auth"
	"github.com/caixalivre/pdv-api/internal/application/dto"
	"github.com/caixalivre/pdv-api/internal/application/store"
	"github.com/caixalivre/pdv-api/internal/domain"
	"github.com/caixalivre/pdv-api/internal/domain/entity"
	"github.com/caixalivre/pdv-api/internal/domain/repository"
	"github.com/caixalivre/pdv-api/internal/infrastructure/memstore"
	pkgjwt "github.com/caixalivre/pdv-api/pkg/jwt"
)

type memProvider struct{ set *store.Set }

func (p *memProvider) Select(context.Context) *store.Set { return p.set }
func (p *memProvider) Persistent(context.Context) bool   { return false }

const testSecret = "segredo-de-teste"

func newAuthUC(set *store.Set) *auth.AuthUseCase {
	return auth.NewAuthUseCase(&memProvider{set: set}, auth.JWTConfig{
		Secret: testSecret, ExpMinutes: 60, Issuer: "pdv-api-test",
	})
}

func seedBusiness(t *testing.T, set *store.Set, id string) {
	t.Helper()
	require.NoError(t, set.Businesses.Create(&entity.Business{
		ID: id, Name: "Loja", Plan: entity.PlanFree, Status: "active",
		CreatedAt: time.Now(),
	}))
}

func TestRegisterUser_PadraoCaixa(t *testing.T) {
	set := memstore.NewStore().Set()
	seedBusiness(t, set, "biz-a")
	uc := newAuthUC(set)

	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		BusinessID: "biz-a", Email: "joao@example.com", Password: "senha-segura",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleCaixa, out.Role, "papel padrão deve ser caixa")
	assert.Equal(t, "biz-a", out.BusinessID)
	assert.Equal(t, "joao@example.com", out.Name, "sem nome, usa o e-mail")
}

func TestRegisterUser_TenantInexistente(t *testing.T) {
	set := memstore.NewStore().Set()
	uc := newAuthUC(set)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		BusinessID: "fantasma", Email: "a@example.com", Password: "senha-segura",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	set := memstore.NewStore().Set()
	seedBusiness(t, set, "biz-a")
	uc := newAuthUC(set)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		BusinessID: "biz-a", Email: "a@example.com", Password: "senha-segura",
	})
	require.NoError(t, err)

	_, err = uc.RegisterUser(context.Background(), dto.RegisterRequest{
		BusinessID: "biz-a", Email: "a@example.com", Password: "outra-senha",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_TokenCarregaTenantEPapel(t *testing.T) {
	set := memstore.NewStore().Set()
	seedBusiness(t, set, "biz-a")
	uc := newAuthUC(set)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		BusinessID: "biz-a", Email: "gerente@example.com", Password: "senha-segura",
		Role: entity.RoleGerente,
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "gerente@example.com", Password: "senha-segura",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, businessID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "biz-a", businessID)
	assert.Equal(t, entity.RoleGerente, role)
}

func TestLogin_SenhaErrada(t *testing.T) {
	set := memstore.NewStore().Set()
	seedBusiness(t, set, "biz-a")
	uc := newAuthUC(set)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		BusinessID: "biz-a", Email: "a@example.com", Password: "senha-segura",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "a@example.com", Password: "senha-errada",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	set := memstore.NewStore().Set()
	uc := newAuthUC(set)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ninguem@example.com", Password: "tanto-faz",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// failingUserRepo simula uma falha de leitura na consulta por e-mail.
type failingUserRepo struct{ repository.UserRepository }

var errConsultaEmail = errors.New("consulta de e-mail indisponível")

func (failingUserRepo) FindByEmail(string) (*entity.User, error) {
	return nil, errConsultaEmail
}

func TestRegisterUser_FalhaNaConsultaDeEmailPropaga(t *testing.T) {
	set := memstore.NewStore().Set()
	seedBusiness(t, set, "biz-a")
	set.Users = failingUserRepo{UserRepository: set.Users}
	uc := newAuthUC(set)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		BusinessID: "biz-a", Email: "a@example.com", Password: "senha-segura",
	})
	assert.ErrorIs(t, err, errConsultaEmail)
}
