package http

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	"github.com/pkg/errors"
	"github.com/superj80820/credential-service/domain"
	"github.com/superj80820/credential-service/kit/code"
	httpMiddlewareKit "github.com/superj80820/credential-service/kit/http/middleware"
	httpTransportKit "github.com/superj80820/credential-service/kit/http/transport"
)

var EncodeAuthVerifyResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeJsonResponse)

type authVerifyRequest struct {
	AccessToken string
}

type authVerifyResponse struct {
	Email          string  `json:"email"`
	Username       string  `json:"username"`
	ProfilePicture *string `json:"profilePicture"`
}

func DecodeAuthVerifyRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	token := r.Header.Get("Authentication")
	if token == "" {
		return nil, code.CreateErrorCode(http.StatusUnauthorized).AddErrorMetaData(errors.New("get token failed"))
	}
	return authVerifyRequest{AccessToken: token}, nil
}

func MakeAuthVerifyEndpoint(svc domain.AuthUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(authVerifyRequest)
		claims, err := svc.Verify(req.AccessToken)
		if err != nil {
			return nil, err
		}
		return &authVerifyResponse{
			Email:          claims.Email,
			Username:       claims.Username,
			ProfilePicture: claims.ProfilePicture,
		}, nil
	}
}
