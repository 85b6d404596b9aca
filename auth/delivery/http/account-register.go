package http

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	"github.com/superj80820/credential-service/domain"
	"github.com/superj80820/credential-service/kit/code"
	httpMiddlewareKit "github.com/superj80820/credential-service/kit/http/middleware"
	httpTransportKit "github.com/superj80820/credential-service/kit/http/transport"
)

var (
	DecodeAccountRegisterRequest  = httpTransportKit.DecodeJsonRequest[accountRegisterRequest]
	EncodeAccountRegisterResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeJsonResponse)
)

type accountRegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// accountPublic is the only account projection ever serialized outward.
// The password hash and refresh token never leave the service.
type accountPublic struct {
	Name           string   `json:"name"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	ProfilePicture *string  `json:"profilePicture"`
	Followers      []string `json:"followers"`
	Following      []string `json:"following"`
}

func createAccountPublic(account *domain.Account) *accountPublic {
	return &accountPublic{
		Name:           account.Name,
		Username:       account.Username,
		Email:          account.Email,
		ProfilePicture: account.ProfilePicture,
		Followers:      account.Followers,
		Following:      account.Following,
	}
}

type accountRegisterResponse struct {
	User    *accountPublic `json:"user"`
	Message string         `json:"message"`
}

func (accountRegisterResponse) SuccessCode() *code.SuccessCode {
	return &code.SuccessCode{HTTPCode: http.StatusCreated}
}

func MakeAccountRegisterEndpoint(svc domain.AccountUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(accountRegisterRequest)
		account, err := svc.Register(ctx, req.Name, req.Username, req.Email, req.Password)
		if err != nil {
			return nil, err
		}
		return accountRegisterResponse{
			User:    createAccountPublic(account),
			Message: "User registered successfully",
		}, nil
	}
}
