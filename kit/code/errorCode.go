package code

import (
	"encoding/json"
	"fmt"
	httpPKG "net/http"

	"github.com/pkg/errors"
)

type errorCode struct {
	GeneralCode int    `json:"http_code"`
	Code        int    `json:"code"`
	Message     string `json:"message"`
	OriginError error  `json:"-"`
	CallStack   string `json:"-"`
}

func (e errorCode) Error() string {
	errorStr, err := json.Marshal(e)
	if err != nil {
		panic(err)
	}
	return string(errorStr)
}

func (e *errorCode) AddErrorMetaData(err error) *errorCode {
	e.OriginError = err
	e.CallStack = fmt.Sprintf("%+v", err)
	return e
}

func (e *errorCode) AddCode(code int, args ...any) *errorCode {
	if httpErrorCodes, ok := errorCodes[e.GeneralCode]; ok {
		if errorCodes, ok := httpErrorCodes[code]; ok {
			e.Code = code
			e.Message = fmt.Sprintf(errorCodes, args...)
		}
	}
	return e
}

const (
	Default = iota
	InvalidBody
	Expired
	Revoke
	PasswordInvalid
	EmailPasswordRequired
	EmailFormatInvalid
	PasswordPolicy
	EmailExists
	UsernameExists
	UsernameRequired
	EmailRequired
	UserNotFound
)

var errorCodes = map[int]map[int]string{
	httpPKG.StatusNotFound: {
		Default:      "not found",
		UserNotFound: "User not found",
	},
	httpPKG.StatusInternalServerError: {
		Default: "internal error",
	},
	httpPKG.StatusBadRequest: {
		Default:               "bad request",
		InvalidBody:           "invalid body",
		PasswordInvalid:       "Invalid password",
		EmailPasswordRequired: "Email and password are required",
		EmailFormatInvalid:    "Invalid email format",
		PasswordPolicy:        "Password must contain at least one number",
		EmailExists:           "Email already exists",
		UsernameExists:        "Username already exists",
		UsernameRequired:      "Username is required",
		EmailRequired:         "Email is required",
	},
	httpPKG.StatusUnauthorized: {
		Default:         "unauthorized",
		Expired:         "expired",
		Revoke:          "revoked",
		PasswordInvalid: "token invalid",
	},
	httpPKG.StatusForbidden: {
		Default: "forbidden",
	},
}

type errorCodeOption func(*errorCode)

func CreateErrorCode(code int, options ...errorCodeOption) *errorCode {
	resCode := httpPKG.StatusInternalServerError
	resMessage := errorCodes[httpPKG.StatusInternalServerError][Default]
	if codes, ok := errorCodes[code]; ok {
		resCode = code

		if errorCodes, ok := codes[Default]; ok {
			resMessage = errorCodes
		}
	}

	errorCode := errorCode{
		GeneralCode: resCode,
		Code:        Default,
		Message:     resMessage,
	}

	for _, option := range options {
		option(&errorCode)
	}

	return &errorCode
}

func ParseErrorCode(err error) *errorCode {
	causeErr := errors.Cause(err)
	switch errorCode := causeErr.(type) {
	case *errorCode:
		return errorCode
	}

	errorCode := CreateErrorCode(httpPKG.StatusInternalServerError).AddErrorMetaData(err)

	return errorCode
}
