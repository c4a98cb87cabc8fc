package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/firelovers/storefront/app/models"
	"github.com/firelovers/storefront/internal/store"
	"github.com/firelovers/storefront/pkg/auth"
)

// ErrEmailTaken means another account already uses the requested email.
var ErrEmailTaken = errors.New("email already in use")

// UserRepo is the slice of the user repository the service depends on.
type UserRepo interface {
	Create(user *models.User) error
	FindByID(id uint) (models.User, error)
	FindByEmail(email string) (models.User, error)
	All() ([]models.User, error)
	Save(user *models.User) error
	Delete(id uint) (int64, error)
}

// UserService owns user accounts. Passwords are bcrypt-hashed before they
// ever reach the repository.
type UserService struct {
	users UserRepo
}

func NewUserService(users UserRepo) *UserService {
	return &UserService{users: users}
}

// Create registers a new user.
func (s *UserService) Create(in models.CreateUserInput) (models.User, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}
	user := models.User{
		Username: in.Username,
		Email:    strings.ToLower(in.Email),
		Password: hash,
	}
	if err := s.users.Create(&user); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}
	return user, nil
}

// All lists every user.
func (s *UserService) All() ([]models.User, error) {
	return s.users.All()
}

// Find returns a single user.
func (s *UserService) Find(id uint) (models.User, error) {
	user, err := s.users.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, store.ErrNotFound
	}
	return user, err
}

// Update replaces all mutable fields of a user.
func (s *UserService) Update(id uint, in models.CreateUserInput) (models.User, error) {
	user, err := s.Find(id)
	if err != nil {
		return models.User{}, err
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}
	user.Username = in.Username
	user.Email = strings.ToLower(in.Email)
	user.Password = hash
	if err := s.users.Save(&user); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}
	return user, nil
}

// Patch updates only the fields present in the input. A body carrying no
// fields at all is rejected rather than silently accepted.
func (s *UserService) Patch(id uint, in models.PatchUserInput) (models.User, error) {
	if in.Username == nil && in.Email == nil && in.Password == nil {
		return models.User{}, ErrEmptyPatch
	}
	user, err := s.Find(id)
	if err != nil {
		return models.User{}, err
	}
	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Email != nil {
		user.Email = strings.ToLower(*in.Email)
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return models.User{}, err
		}
		user.Password = hash
	}
	if err := s.users.Save(&user); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}
	return user, nil
}

// Delete removes a user permanently.
func (s *UserService) Delete(id uint) error {
	deleted, err := s.users.Delete(id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return store.ErrNotFound
	}
	return nil
}

// Login verifies credentials and mints a signed token.
func (s *UserService) Login(in models.LoginInput) (token string, user models.User, err error) {
	user, err = s.users.FindByEmail(strings.ToLower(in.Email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", models.User{}, auth.ErrInvalidCredentials
	}
	if err != nil {
		return "", models.User{}, err
	}
	if !auth.CheckPassword(user.Password, in.Password) {
		return "", models.User{}, auth.ErrInvalidCredentials
	}
	token, err = auth.GenerateToken(user.ID)
	return token, user, err
}

// isUniqueViolation matches the duplicate-key error shapes of the supported
// SQL drivers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
