package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"medicare-backend/internal/domain"
	"medicare-backend/internal/dto"
	"medicare-backend/internal/repository"
)

type UserServiceImpl struct {
	userRepo repository.UserRepository
}

func CreateUserService(userRepo repository.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	user.Password = ""
	return user, nil
}

// UpdateProfile writes only the fields present in the request. Email,
// role and ban state are not touchable from this surface.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (domain.User, error) {
	fields := bson.M{"updatedAt": time.Now().UTC()}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}

	if err := s.userRepo.Update(ctx, userID, fields); err != nil {
		return domain.User{}, err
	}

	return s.GetProfile(ctx, userID)
}
