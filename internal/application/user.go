package application

import (
	"errors"
	"time"

	"github.com/danuartha/notaris-go/internal/api/middleware"
	"github.com/danuartha/notaris-go/internal/config"
	"github.com/danuartha/notaris-go/internal/domain/user"
	"github.com/danuartha/notaris-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrIncorrectPassword   = errors.New("old password is incorrect")
	ErrMissingOldPassword  = errors.New("old password is required to change password")
	ErrPasswordHashFailure = errors.New("failed to hash new password")
	ErrEmailTaken          = errors.New("email already registered")
	ErrReservedAdminUser   = errors.New("cannot delete or downgrade the reserved admin account")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

func (s *UserService) RegisterUser(input user.CreateUserInput) error {
	_, err := s.Repos.User.GetUserByEmail(input.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil {
		return ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}

	usr := user.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		RoleID:   user.RoleIDClient,
		Phone:    input.Phone,
		Address:  input.Address,
	}
	if input.RoleID != nil {
		usr.RoleID = *input.RoleID
	}
	return s.Repos.User.SaveUser(&usr)
}

func (s *UserService) LoginUser(email, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr.ID, usr.Name, usr.RoleID, 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}

	return usr, token, nil
}

func (s *UserService) FindUserByID(id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}
	return usr, nil
}

func (s *UserService) ListUsers() ([]user.User, error) {
	return s.Repos.User.ListUsers()
}

// SearchClients backs the add-party search box.
func (s *UserService) SearchClients(query string, limit int) ([]user.User, error) {
	return s.Repos.User.SearchClients(query, limit)
}

func (s *UserService) UpdateUser(id uint, input user.UpdateUserInput) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}

	if usr.Email == config.ReservedAdminEmail && input.RoleID != nil && *input.RoleID != user.RoleIDAdmin {
		return user.User{}, ErrReservedAdminUser
	}

	if input.Password != nil {
		if input.OldPassword == nil {
			return user.User{}, ErrMissingOldPassword
		}
		if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(*input.OldPassword)); err != nil {
			return user.User{}, ErrIncorrectPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, ErrPasswordHashFailure
		}
		usr.Password = string(hashed)
	}

	if input.Name != nil {
		usr.Name = *input.Name
	}
	if input.Email != nil {
		usr.Email = *input.Email
	}
	if input.RoleID != nil {
		usr.RoleID = *input.RoleID
	}
	if input.Phone != nil {
		usr.Phone = input.Phone
	}
	if input.Address != nil {
		usr.Address = input.Address
	}

	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) DeleteUser(id uint) error {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return ErrUserNotFound
	}
	if usr.Email == config.ReservedAdminEmail {
		return ErrReservedAdminUser
	}
	return s.Repos.User.DeleteUser(id)
}
