package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	"github.com/pkg/errors"
	"github.com/superj80820/credential-service/domain"
	"github.com/superj80820/credential-service/kit/code"
	httpMiddlewareKit "github.com/superj80820/credential-service/kit/http/middleware"
	httpTransportKit "github.com/superj80820/credential-service/kit/http/transport"
)

var EncodeAuthLogoutResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeJsonResponse)

type authLogoutRequest struct {
	Email string `json:"email"`

	accessToken string
}

type authLogoutResponse struct {
	Message string `json:"message"`
}

// DecodeAuthLogoutRequest reads the email from the body and the access token
// from the Authentication header, clearing a session is only allowed to a
// caller holding a valid token for that account.
func DecodeAuthLogoutRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	token := r.Header.Get("Authentication")
	if token == "" {
		return nil, code.CreateErrorCode(http.StatusUnauthorized).AddErrorMetaData(errors.New("get token failed"))
	}
	var req authLogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidBody).AddErrorMetaData(err)
	}
	req.accessToken = token
	return req, nil
}

func MakeAuthLogoutEndpoint(svc domain.AuthUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(authLogoutRequest)
		if err := svc.Logout(ctx, req.accessToken, req.Email); err != nil {
			return nil, err
		}
		return authLogoutResponse{Message: "Logout successful"}, nil
	}
}
