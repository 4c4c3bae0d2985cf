package barbershop

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/barbershop-api/internal/domain"
	domainShop "github.com/BruksfildServices01/barbershop-api/internal/domain/barbershop"
	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

type TokenIssuer interface {
	Issue(barbershopID uint) (string, error)
}

type AuthenticateInput struct {
	Email string
	Phone string
}

type AuthenticateOutput struct {
	Token        string
	BarbershopID uint
}

// Authenticate looks a shop up by its contact pair and issues a session token.
type Authenticate struct {
	repo   domainShop.Repository
	tokens TokenIssuer
}

func NewAuthenticate(repo domainShop.Repository, tokens TokenIssuer) *Authenticate {
	return &Authenticate{repo: repo, tokens: tokens}
}

func (uc *Authenticate) Execute(ctx context.Context, in AuthenticateInput) (*AuthenticateOutput, error) {
	shop, err := uc.repo.FindByEmailAndPhone(
		ctx,
		validators.NormalizeEmail(in.Email),
		strings.TrimSpace(in.Phone),
	)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(shop.ID)
	if err != nil {
		return nil, err
	}

	return &AuthenticateOutput{Token: token, BarbershopID: shop.ID}, nil
}
