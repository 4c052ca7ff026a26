package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"medicare-backend/internal/domain"
	"medicare-backend/internal/dto"
	"medicare-backend/internal/repository"
	"medicare-backend/pkg/errs"
	"medicare-backend/pkg/recaptcha"
	"medicare-backend/pkg/utils"
)

type AuthServiceImpl struct {
	userRepo  repository.UserRepository
	captcha   recaptcha.Verifier
	jwtSecret string
}

func CreateAuthService(userRepo repository.UserRepository, captcha recaptcha.Verifier, jwtSecret string) AuthService {
	return &AuthServiceImpl{userRepo: userRepo, captcha: captcha, jwtSecret: jwtSecret}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req dto.RegisterRequest, remoteIP string) (domain.User, error) {
	if !s.captcha.Verify(ctx, req.RecaptchaToken, remoteIP) {
		return domain.User{}, errs.ErrCaptchaFailed
	}

	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return domain.User{}, errs.ErrUserAlreadyExists
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return domain.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		Email:     req.Email,
		Password:  string(hashed),
		Name:      req.Name,
		Phone:     req.Phone,
		Address:   req.Address,
		Role:      domain.RoleCustomer,
		IsBanned:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if user.Address == nil {
		user.Address = map[string]interface{}{}
	}

	id, err := s.userRepo.Insert(ctx, user)
	if err != nil {
		return domain.User{}, err
	}

	user.ID = id
	user.Password = ""
	return user, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req dto.LoginRequest, remoteIP string) (dto.LoginResponse, error) {
	if !s.captcha.Verify(ctx, req.RecaptchaToken, remoteIP) {
		return dto.LoginResponse{}, errs.ErrCaptchaFailed
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return dto.LoginResponse{}, errs.ErrInvalidCredentials
		}
		return dto.LoginResponse{}, err
	}

	if user.IsBanned {
		return dto.LoginResponse{}, errs.ErrAccountBanned
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return dto.LoginResponse{}, errs.ErrInvalidCredentials
	}

	role := user.Role
	if role == "" {
		role = domain.RoleCustomer
	}

	token, err := utils.CreateJWTToken(user.ID.Hex(), user.Email, role, s.jwtSecret)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	user.Password = ""
	return dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		Role:    role,
		Name:    user.Name,
		Email:   user.Email,
		User:    user,
	}, nil
}
