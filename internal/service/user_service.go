package service

import (
	"context"
	"time"

	"ai-chatbot-be/internal/dto"
	"ai-chatbot-be/internal/entity"
	"ai-chatbot-be/internal/pkg/serverutils"
	"ai-chatbot-be/internal/repository/specification"
	"ai-chatbot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	Sync(ctx context.Context, request *dto.SyncUserRequest) (*dto.UserResponse, error)
	SaveUser(ctx context.Context, request *dto.SaveUserRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, uid string) (*dto.UserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	photoURL := ""
	if u.PhotoURL != nil {
		photoURL = *u.PhotoURL
	}
	return &dto.UserResponse{
		Uid:       u.Uid,
		Name:      u.Name,
		Email:     u.Email,
		PhotoURL:  photoURL,
		Provider:  u.Provider,
		Role:      string(u.Role),
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

// Sync creates the local user row for an authenticated identity when it does
// not exist yet, and refreshes last_login either way.
func (s *userService) Sync(ctx context.Context, request *dto.SyncUserRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	user, err := repo.FindOne(ctx, specification.ByUid{Uid: request.Uid})
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = s.newUserFromIdentity(request.Uid, request.Name, request.Email, request.PhotoURL, request.Provider)
		if err := repo.Create(ctx, user); err != nil {
			return nil, err
		}
	} else {
		if err := repo.TouchLastLogin(ctx, request.Uid); err != nil {
			return nil, err
		}
		now := time.Now()
		user.LastLogin = &now
	}

	return toUserResponse(user), nil
}

// SaveUser upserts: identity fields overwrite the stored ones when the user
// already exists.
func (s *userService) SaveUser(ctx context.Context, request *dto.SaveUserRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	user, err := repo.FindOne(ctx, specification.ByUid{Uid: request.Uid})
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = s.newUserFromIdentity(request.Uid, request.Name, request.Email, request.PhotoURL, request.Provider)
		if err := repo.Create(ctx, user); err != nil {
			return nil, err
		}
		return toUserResponse(user), nil
	}

	user.Name = request.Name
	user.Email = request.Email
	if request.PhotoURL != "" {
		photoURL := request.PhotoURL
		user.PhotoURL = &photoURL
	}
	if request.Provider != "" {
		user.Provider = request.Provider
	}
	if err := repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return toUserResponse(user), nil
}

func (s *userService) GetUser(ctx context.Context, uid string) (*dto.UserResponse, error) {
	if uid == "" {
		return nil, serverutils.BadRequest("uid is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUid{Uid: uid})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NotFound("User not found")
	}

	return toUserResponse(user), nil
}

func (s *userService) newUserFromIdentity(uid, name, email, photoURL, provider string) *entity.User {
	now := time.Now()
	user := &entity.User{
		Id:        uuid.New(),
		Uid:       uid,
		Name:      name,
		Email:     email,
		Provider:  provider,
		Role:      entity.UserRoleUser,
		Status:    entity.UserStatusActive,
		LastLogin: &now,
		CreatedAt: now,
	}
	if provider == "" {
		user.Provider = "password"
	}
	if photoURL != "" {
		p := photoURL
		user.PhotoURL = &p
	}
	return user
}
