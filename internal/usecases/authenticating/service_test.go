package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/repository/mocks"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/config"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey: "test-secret-key",
	}
}

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return &domain.User{
		ID:           42,
		Name:         "Maria",
		Lastname:     "Silva",
		Email:        "maria@example.com",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       3,
	}
}

func TestLoginUser(t *testing.T) {
	t.Run("Deve gerar token válido para credenciais corretas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		user := testUser(t, "Senha123")

		userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(user, nil)

		service := NewService(userRepo, testConfig())

		token, err := service.LoginUser("Maria@Example.com ", "Senha123")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 42, claims.UserID)
		assert.Equal(t, "maria@example.com", claims.UserEmail)
	})

	t.Run("Deve rejeitar senha incorreta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(testUser(t, "Senha123"), nil)

		service := NewService(userRepo, testConfig())

		_, err := service.LoginUser("maria@example.com", "outra-senha")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Deve rejeitar usuário desativado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		user := testUser(t, "Senha123")
		user.Active = false

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(user, nil)

		service := NewService(userRepo, testConfig())

		_, err := service.LoginUser("maria@example.com", "Senha123")
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("Deve rejeitar usuário inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("sumiu@example.com").Return(nil, nil)

		service := NewService(userRepo, testConfig())

		_, err := service.LoginUser("sumiu@example.com", "Senha123")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestValidateToken(t *testing.T) {
	t.Run("Deve rejeitar token adulterado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mocks.NewMockUserRepository(ctrl), testConfig())

		_, err := service.ValidateToken("token-invalido")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("Deve criar usuário com senha criptografada e papel padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("novo@example.com").Return(nil, nil)
		userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) (*domain.User, error) {
			assert.Equal(t, "novo@example.com", user.Email)
			assert.Equal(t, 3, user.RoleID)
			assert.False(t, user.Active)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha123")))
			return user, nil
		})

		service := NewService(userRepo, testConfig())

		created, err := service.CreateUser(&domain.User{
			Name:         "Novo",
			Lastname:     "Usuario",
			Email:        "Novo@Example.com",
			PasswordHash: "Senha123",
		})
		assert.NoError(t, err)
		assert.NotNil(t, created)
	})

	t.Run("Deve rejeitar email já cadastrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("maria@example.com").Return(testUser(t, "Senha123"), nil)

		service := NewService(userRepo, testConfig())

		_, err := service.CreateUser(&domain.User{
			Name:         "Maria",
			Lastname:     "Silva",
			Email:        "maria@example.com",
			PasswordHash: "Senha123",
		})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Deve rejeitar cadastro sem dados obrigatórios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mocks.NewMockUserRepository(ctrl), testConfig())

		_, err := service.CreateUser(&domain.User{Email: "so-email@example.com"})
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), testConfig())

	t.Run("Deve aceitar senha forte", func(t *testing.T) {
		assert.NoError(t, service.ValidatePasswordStrength("Senha123"))
	})

	t.Run("Deve rejeitar senha curta", func(t *testing.T) {
		assert.ErrorIs(t, service.ValidatePasswordStrength("Ab1"), ErrWeakPassword)
	})

	t.Run("Deve rejeitar senha sem números", func(t *testing.T) {
		assert.ErrorIs(t, service.ValidatePasswordStrength("SenhaForte"), ErrWeakPassword)
	})

	t.Run("Deve rejeitar senha sem maiúsculas", func(t *testing.T) {
		assert.ErrorIs(t, service.ValidatePasswordStrength("senha1234"), ErrWeakPassword)
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("Deve alterar a senha após validar a atual", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		user := testUser(t, "Senha123")

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(42).Return(user, nil)
		userRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(updated *domain.User) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("NovaSenha456")))
			return nil
		})

		service := NewService(userRepo, testConfig())

		assert.NoError(t, service.ChangePassword(42, "Senha123", "NovaSenha456"))
	})

	t.Run("Deve rejeitar nova senha igual à atual", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(42).Return(testUser(t, "Senha123"), nil)

		service := NewService(userRepo, testConfig())

		assert.ErrorIs(t, service.ChangePassword(42, "Senha123", "Senha123"), ErrSamePassword)
	})
}

func TestManageUserBusinesses(t *testing.T) {
	t.Run("Deve vincular novas empresas e desvincular as removidas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(42).Return(testUser(t, "Senha123"), nil)
		userRepo.EXPECT().GetUserLinkedBusinesses(42).Return([]string{"biz-a", "biz-b"}, nil)
		userRepo.EXPECT().LinkUserBusiness(42, "biz-c").Return(nil)
		userRepo.EXPECT().UnlinkUserBusiness(42, "biz-b").Return(nil)

		service := NewService(userRepo, testConfig())

		assert.NoError(t, service.ManageUserBusinesses(42, []string{"biz-a", "biz-c"}))
	})

	t.Run("Deve falhar para usuário inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(99).Return(nil, nil)

		service := NewService(userRepo, testConfig())

		assert.ErrorIs(t, service.ManageUserBusinesses(99, nil), ErrUserNotFound)
	})
}
