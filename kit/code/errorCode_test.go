package code

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	errorCodeNotFound := CreateErrorCode(http.StatusNotFound)
	assert.Equal(t, errorCodeNotFound, ParseErrorCode(errorCodeNotFound))

	for _, testCase := range []struct {
		message          string
		errString        string
		isExistCallStack bool
		errorCode        *errorCode
	}{
		{
			message:          "bad request",
			errString:        `{"http_code":400,"code":0,"message":"bad request"}`,
			isExistCallStack: false,
			errorCode:        CreateErrorCode(http.StatusBadRequest),
		},
		{
			message:          "Email already exists",
			errString:        `{"http_code":400,"code":8,"message":"Email already exists"}`,
			isExistCallStack: false,
			errorCode:        CreateErrorCode(http.StatusBadRequest).AddCode(EmailExists),
		},
		{
			message:          "User not found",
			errString:        `{"http_code":404,"code":12,"message":"User not found"}`,
			isExistCallStack: false,
			errorCode:        CreateErrorCode(http.StatusNotFound).AddCode(UserNotFound),
		},
		{
			message:          "expired",
			errString:        `{"http_code":401,"code":2,"message":"expired"}`,
			isExistCallStack: false,
			errorCode:        CreateErrorCode(http.StatusUnauthorized).AddCode(Expired),
		},
		{
			message:          "internal error",
			errString:        `{"http_code":500,"code":0,"message":"internal error"}`,
			isExistCallStack: true,
			errorCode:        ParseErrorCode(errors.New("unknown error")),
		},
	} {
		assert.Equal(t, testCase.message, testCase.errorCode.Message)
		assert.Equal(t, testCase.errString, testCase.errorCode.Error())
		assert.Equal(t, testCase.isExistCallStack, len(testCase.errorCode.CallStack) != 0)
	}

	errorCodeWrapped := errors.Wrap(CreateErrorCode(http.StatusBadRequest).AddCode(PasswordInvalid), "login failed")
	assert.Equal(t, http.StatusBadRequest, ParseErrorCode(errorCodeWrapped).GeneralCode)
	assert.Equal(t, "Invalid password", ParseErrorCode(errorCodeWrapped).Message)
}
