package http

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	"github.com/superj80820/credential-service/domain"
	httpMiddlewareKit "github.com/superj80820/credential-service/kit/http/middleware"
	httpTransportKit "github.com/superj80820/credential-service/kit/http/transport"
)

var EncodeAccountFetchResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeJsonResponse)

type accountFetchRequest struct {
	Username string
}

type accountFetchResponse struct {
	Message string         `json:"message"`
	User    *fetchedAccount `json:"user"`
}

// fetchedAccount carries the document key as id, everything else is the
// public projection only.
type fetchedAccount struct {
	ID string `json:"id"`
	*accountPublic
}

func DecodeAccountFetchRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	return accountFetchRequest{Username: r.URL.Query().Get("username")}, nil
}

func MakeAccountFetchEndpoint(svc domain.AccountUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(accountFetchRequest)
		account, err := svc.GetByUsername(ctx, req.Username)
		if err != nil {
			return nil, err
		}
		return accountFetchResponse{
			Message: "User fetched successfully",
			User: &fetchedAccount{
				ID:            account.Email,
				accountPublic: createAccountPublic(account),
			},
		}, nil
	}
}
