package services_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"weighttracker/internal/models"
	"weighttracker/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockSettingsRepository is a mock implementation of
// repositories.SettingsRepository.
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetByUserID(userID string) (*models.UserSettings, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSettings), args.Error(1)
}

func (m *MockSettingsRepository) Create(settings *models.UserSettings) error {
	args := m.Called(settings)
	return args.Error(0)
}

func (m *MockSettingsRepository) Update(settings *models.UserSettings) error {
	args := m.Called(settings)
	return args.Error(0)
}

func TestAuthService_RegisterDisabled(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSettings := new(MockSettingsRepository)
	service := services.NewAuthService(mockUsers, mockSettings, false)

	user, err := service.Register("alice", "secret123", nil)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, services.ErrRegistrationDisabled)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_RegisterMissingFields(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSettings := new(MockSettingsRepository)
	service := services.NewAuthService(mockUsers, mockSettings, true)

	_, err := service.Register("", "secret123", nil)
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = service.Register("alice", "", nil)
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestAuthService_RegisterUsernameTaken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSettings := new(MockSettingsRepository)
	service := services.NewAuthService(mockUsers, mockSettings, true)

	existing := &models.User{ID: "user-1", Username: "alice"}
	mockUsers.On("GetByUsername", "alice").Return(existing, nil).Once()

	user, err := service.Register("alice", "secret123", nil)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
	mockUsers.AssertExpectations(t)
}

func TestAuthService_RegisterSuccess(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSettings := new(MockSettingsRepository)
	service := services.NewAuthService(mockUsers, mockSettings, true)

	mockUsers.On("GetByUsername", "alice").Return(nil, fmt.Errorf("user with username alice not found")).Once()
	mockUsers.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		u := args.Get(0).(*models.User)
		// The repository assigns the ID on insert.
		u.ID = "user-1"
		assert.Equal(t, "alice", u.Username)
		assert.NotEqual(t, "secret123", u.Password, "password must be stored hashed")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")))
	}).Return(nil).Once()
	mockSettings.On("Create", mock.AnythingOfType("*models.UserSettings")).Run(func(args mock.Arguments) {
		s := args.Get(0).(*models.UserSettings)
		assert.Equal(t, "user-1", s.UserID)
		assert.Equal(t, float64(models.DefaultHeight), s.Height)
		assert.Equal(t, float64(models.DefaultInitialWeight), s.InitialWeight)
		assert.Equal(t, float64(models.DefaultTargetWeight), s.TargetWeight)
		assert.Equal(t, models.DefaultTargetMonths, s.TargetMonths)
		assert.False(t, s.ReminderEnabled)
		assert.Equal(t, models.DefaultReminderTime, s.ReminderTime)
	}).Return(nil).Once()

	user, err := service.Register("alice", "secret123", nil)

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "user-1", user.ID)
	mockUsers.AssertExpectations(t)
	mockSettings.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSettings := new(MockSettingsRepository)
	service := services.NewAuthService(mockUsers, mockSettings, true)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	stored := &models.User{ID: "user-1", Username: "alice", Password: string(hash)}

	// Successful login
	mockUsers.On("GetByUsername", "alice").Return(stored, nil).Once()
	user, err := service.Login("alice", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	// Wrong password
	mockUsers.On("GetByUsername", "alice").Return(stored, nil).Once()
	user, err = service.Login("alice", "wrong")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Unknown user is indistinguishable from a wrong password
	mockUsers.On("GetByUsername", "bob").Return(nil, errors.New("user with username bob not found")).Once()
	user, err = service.Login("bob", "secret123")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	mockUsers.AssertExpectations(t)
}

func TestAuthService_ResolveToken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockSettings := new(MockSettingsRepository)
	service := services.NewAuthService(mockUsers, mockSettings, true)

	stored := &models.User{ID: "user-1", Username: "alice"}

	mockUsers.On("GetByID", "user-1").Return(stored, nil).Once()
	user, err := service.ResolveToken("user-1")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	mockUsers.On("GetByID", "unknown").Return(nil, errors.New("user with ID unknown not found")).Once()
	user, err = service.ResolveToken("unknown")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	mockUsers.AssertExpectations(t)
}
