package middleware

import (
	"context"
	"net/http"

	"github.com/superj80820/credential-service/kit/code"
)

func EncodeResponseSetSuccessHTTPCode(next func(ctx context.Context, w http.ResponseWriter, response interface{}) error) func(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	return func(ctx context.Context, w http.ResponseWriter, response interface{}) error {
		successCode := code.ParseResponseSuccessCode(response)
		if successCode.HTTPCode != http.StatusOK {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(successCode.HTTPCode)
		}
		return next(ctx, w, response)
	}
}
