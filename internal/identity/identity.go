package identity

import (
	"context"
	"strings"

	"github.com/akolanti/DocBridgeAPI/internal/domain/commonModels"
	"github.com/akolanti/DocBridgeAPI/pkg/logger_i"
)

// User is the part of the identity backend's user record this service relies on.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Backend is the identity platform. Rejections come back as authentication AppErrors.
type Backend interface {
	SignInWithPassword(ctx context.Context, email string, password string) (User, error)
	GetUser(ctx context.Context, userID string) (User, error)
}

// Resolver turns credentials or a presented user id into a customer scope.
type Resolver interface {
	SignIn(ctx context.Context, email string, password string) (commonModels.Customer, error)
	ResolveCustomerID(ctx context.Context, userID string) (string, error)
}

type resolver struct {
	backend Backend
	logger  *logger_i.Logger
}

func NewResolver(backend Backend) Resolver {
	return &resolver{
		backend: backend,
		logger:  logger_i.NewLogger("IdentityResolver"),
	}
}

// SignIn verifies the credentials with the identity backend. The backend user id
// doubles as the customer id for the ingestion backend.
func (r *resolver) SignIn(ctx context.Context, email string, password string) (commonModels.Customer, error) {
	log := r.logger.ForContext(ctx)
	if strings.TrimSpace(email) == "" || password == "" {
		return commonModels.Customer{}, commonModels.Validation("Email and password are required")
	}

	user, err := r.backend.SignInWithPassword(ctx, email, password)
	if err != nil {
		log.Warn("sign in rejected", "error", err)
		if commonModels.KindOf(err) == commonModels.KindAuthentication {
			return commonModels.Customer{}, err
		}
		return commonModels.Customer{}, commonModels.Authentication(commonModels.MessageOf(err), err)
	}
	if user.ID == "" {
		return commonModels.Customer{}, commonModels.Authentication("Identity backend returned no user", nil)
	}
	log.Debug("signed in", "userId", user.ID)
	return commonModels.NewCustomer(user.ID), nil
}

// ResolveCustomerID round trips the id through the identity backend so callers
// cannot claim a scope that does not belong to a real account.
func (r *resolver) ResolveCustomerID(ctx context.Context, userID string) (string, error) {
	log := r.logger.ForContext(ctx)
	if strings.TrimSpace(userID) == "" {
		return "", commonModels.Validation("User ID is required")
	}

	user, err := r.backend.GetUser(ctx, userID)
	if err != nil {
		log.Warn("user lookup failed", "userId", userID, "error", err)
		return "", &commonModels.AppError{Kind: commonModels.KindValidation, Message: commonModels.MsgInvalidUserID, Err: err}
	}
	if user.ID == "" || user.ID != userID {
		log.Warn("user lookup returned a different account", "userId", userID, "got", user.ID)
		return "", commonModels.Validation(commonModels.MsgInvalidUserID)
	}
	return user.ID, nil
}
