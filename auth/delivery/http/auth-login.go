package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	"github.com/superj80820/credential-service/domain"
	httpTransportKit "github.com/superj80820/credential-service/kit/http/transport"
)

var DecodeAuthLoginRequest = httpTransportKit.DecodeJsonRequest[AuthLoginRequest]

type AuthLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authLoginUser struct {
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	ProfilePicture *string `json:"profilePicture"`
}

type AuthLoginResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	User         authLoginUser `json:"user"`
	Token        string        `json:"token"`
	RefreshToken string        `json:"refreshToken"`
}

func MakeAuthLoginEndpoint(svc domain.AuthUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(AuthLoginRequest)
		session, err := svc.Login(ctx, req.Email, req.Password)
		if err != nil {
			return nil, err
		}
		return &AuthLoginResponse{
			Success: true,
			Message: "Login successful",
			User: authLoginUser{
				Username:       session.Account.Username,
				Email:          session.Account.Email,
				ProfilePicture: session.Account.ProfilePicture,
			},
			Token:        session.AccessToken,
			RefreshToken: session.RefreshToken,
		}, nil
	}
}

func EncodeAuthLoginResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	res := response.(*AuthLoginResponse)
	http.SetCookie(w, &http.Cookie{
		Name:  "access_token",
		Value: res.Token,
	})
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(response)
}
