package code

import httpPKG "net/http"

type SuccessCode struct {
	HTTPCode int `json:"-"`
}

// WithSuccessCode lets a response override the default 200.
type WithSuccessCode interface {
	SuccessCode() *SuccessCode
}

func ParseResponseSuccessCode(res interface{}) *SuccessCode {
	switch successCode := res.(type) {
	case WithSuccessCode:
		return successCode.SuccessCode()
	case nil:
		return &SuccessCode{HTTPCode: httpPKG.StatusNoContent}
	}
	return &SuccessCode{HTTPCode: httpPKG.StatusOK}
}
