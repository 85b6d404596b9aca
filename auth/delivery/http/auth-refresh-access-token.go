package http

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/superj80820/credential-service/domain"
	httpMiddlewareKit "github.com/superj80820/credential-service/kit/http/middleware"
	httpTransportKit "github.com/superj80820/credential-service/kit/http/transport"
)

var (
	DecodeRefreshAccessTokenRequest  = httpTransportKit.DecodeJsonRequest[refreshAccessTokenRequest]
	EncodeRefreshAccessTokenResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeJsonResponse)
)

type refreshAccessTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshAccessTokenResponse struct {
	Token string `json:"token"`
}

func MakeRefreshAccessTokenEndpoint(svc domain.AuthUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(refreshAccessTokenRequest)
		accessToken, err := svc.RefreshAccessToken(ctx, req.RefreshToken)
		if err != nil {
			return nil, err
		}
		return &refreshAccessTokenResponse{
			Token: accessToken,
		}, nil
	}
}
