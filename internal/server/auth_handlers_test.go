package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/shivshankarkannoujiya/Medium/internal/config"
	"github.com/shivshankarkannoujiya/Medium/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

const testSecret = "test-secret-key-12345678901234567890123456789012"

// verifyToken parses a token issued by the server and returns its subject.
func verifyToken(t *testing.T, tokenString string) string {
	t.Helper()
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	sub, ok := claims["sub"].(string)
	require.True(t, ok)
	return sub
}

func TestSignup(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockUserRepository)

	s := &Server{
		config:   &config.Config{JWTSecret: testSecret},
		userRepo: mockRepo,
	}

	app.Post("/signup", s.Signup)

	t.Run("Success", func(t *testing.T) {
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "test@example.com" && u.Name == "Test User"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = 42
		}).Return(nil).Once()

		body, _ := json.Marshal(map[string]string{
			"name":     "Test User",
			"email":    "test@example.com",
			"password": "Password123!",
		})
		req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var got struct {
			Message string `json:"message"`
			UserID  uint   `json:"userId"`
			Token   string `json:"token"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "User created successfully", got.Message)
		assert.Equal(t, uint(42), got.UserID)

		// The returned token must verify back to the returned user id.
		assert.Equal(t, strconv.FormatUint(uint64(got.UserID), 10), verifyToken(t, got.Token))
	})

	t.Run("Password is stored hashed", func(t *testing.T) {
		var stored *models.User
		mockRepo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*models.User)
				stored.ID = 7
			}).Return(nil).Once()

		body, _ := json.Marshal(map[string]string{
			"name":     "Hash Check",
			"email":    "hash@example.com",
			"password": "Sup3rSecret!",
		})
		req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		require.NotNil(t, stored)
		assert.NotEqual(t, "Sup3rSecret!", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("Sup3rSecret!")))
	})

	t.Run("Duplicate email surfaces as 500 with message", func(t *testing.T) {
		mockRepo.On("Create", mock.Anything, mock.Anything).
			Return(models.NewValidationError("User with email already exists")).Once()

		body, _ := json.Marshal(map[string]string{
			"name":     "Dup User",
			"email":    "exists@example.com",
			"password": "Password123!",
		})
		req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var got models.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "User with email already exists", got.Message)
	})

	t.Run("Missing fields", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"email": "only@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	mockRepo.AssertExpectations(t)
}

func TestSignin(t *testing.T) {
	app := fiber.New()
	mockRepo := new(MockUserRepository)

	s := &Server{
		config:   &config.Config{JWTSecret: testSecret},
		userRepo: mockRepo,
	}

	app.Post("/signin", s.Signin)

	hash, err := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.MinCost)
	require.NoError(t, err)
	knownUser := &models.User{ID: 9, Name: "Known", Email: "known@example.com", Password: string(hash)}

	t.Run("Success", func(t *testing.T) {
		mockRepo.On("GetByEmail", mock.Anything, "known@example.com").Return(knownUser, nil).Once()

		body, _ := json.Marshal(map[string]string{
			"email":    "known@example.com",
			"password": "Password123!",
		})
		req := httptest.NewRequest(http.MethodPost, "/signin", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got struct {
			Message string `json:"message"`
			Token   string `json:"token"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "User logged in successfully", got.Message)
		assert.Equal(t, "9", verifyToken(t, got.Token))
	})

	t.Run("Unknown email", func(t *testing.T) {
		mockRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil).Once()

		body, _ := json.Marshal(map[string]string{
			"email":    "nobody@example.com",
			"password": "whatever",
		})
		req := httptest.NewRequest(http.MethodPost, "/signin", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		var got map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "User with email does not exist", got["message"])
		assert.NotContains(t, got, "token")
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockRepo.On("GetByEmail", mock.Anything, "known@example.com").Return(knownUser, nil).Once()

		body, _ := json.Marshal(map[string]string{
			"email":    "known@example.com",
			"password": "not-the-password",
		})
		req := httptest.NewRequest(http.MethodPost, "/signin", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	mockRepo.AssertExpectations(t)
}
