package services

import (
	"errors"
	"log"

	"dealpipeline/internal/models"
	"dealpipeline/internal/repositories"
)

type UserService interface {
	Register(req *models.RegisterRequest) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetByID(id int) (*models.User, error)
	Update(id int, upd *models.UserUpdate) (*models.User, error)
	List(limit, offset int) ([]*models.User, error)
}

type userService struct {
	repo         repositories.UserRepository
	authService  AuthService
	emailService EmailService
}

func NewUserService(repo repositories.UserRepository, authService AuthService, emailService EmailService) UserService {
	return &userService{
		repo:         repo,
		authService:  authService,
		emailService: emailService,
	}
}

func (s *userService) Register(req *models.RegisterRequest) (*models.User, error) {
	role := req.Role
	if role == "" {
		role = models.RoleAnalyst
	}

	hash, err := s.authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         role,
		IsActive:     true,
	}
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if s.emailService != nil {
		if err := s.emailService.SendWelcomeEmail(user.Email, user.FullName); err != nil {
			// warn but do not fail registration
			log.Printf("[users][register] warning: welcome email to %s failed: %v", user.Email, err)
		}
	}
	return user, nil
}

func (s *userService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.authService.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	return user, nil
}

func (s *userService) GetByID(id int) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) Update(id int, upd *models.UserUpdate) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.FullName != nil {
		user.FullName = *upd.FullName
	}
	if upd.Role != nil {
		user.Role = *upd.Role
	}
	if upd.IsActive != nil {
		user.IsActive = *upd.IsActive
	}
	if upd.Password != nil {
		hash, err := s.authService.HashPassword(*upd.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(limit, offset int) ([]*models.User, error) {
	return s.repo.List(limit, offset)
}
