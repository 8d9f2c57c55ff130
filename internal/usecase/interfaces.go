package usecase

import (
	"github.com/danielmek/hotelhub/internal/domain/entity"
)

// JWTService defines the interface for bearer token operations.
type JWTService interface {
	GenerateAccessToken(userID string, role entity.UserRole) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
}
