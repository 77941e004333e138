package service_interfaces

import (
	"context"

	"github.com/apexbank/apexbank-api/internal/adapter/http/models"
	"github.com/apexbank/apexbank-api/internal/commons"
	"github.com/apexbank/apexbank-api/internal/domain"
)

type UserService interface {
	UpdateProfile(ctx context.Context, actor domain.Actor, req models.UpdateProfileRequest) (commons.Response[models.UserResponse], error)
	ListUsers(ctx context.Context, actor domain.Actor) (commons.Response[models.UserListResponse], error)
	GetUser(ctx context.Context, actor domain.Actor, id string) (commons.Response[models.UserResponse], error)
	UpdateUser(ctx context.Context, actor domain.Actor, id string, req models.UpdateUserRequest) (commons.Response[models.UserResponse], error)
	DeleteUser(ctx context.Context, actor domain.Actor, id string) (commons.Response[struct{}], error)
	GetUserDetails(ctx context.Context, actor domain.Actor, id string) (commons.Response[models.UserDetailsResponse], error)
}
