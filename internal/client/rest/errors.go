package rest

import (
	"github.com/dmitrijs2005/goalline/internal/common"
	"github.com/tidwall/gjson"
)

// parseAPIError reads the backend's error envelope. Both
// {"message": "..."} and {"error": {"code": "...", "message": "..."}} are
// understood, as is {"error": "..."}.
func parseAPIError(status int, body []byte) *common.APIError {
	e := &common.APIError{Status: status}
	if !gjson.ValidBytes(body) {
		return e
	}

	res := gjson.GetManyBytes(body, "message", "error.message", "error", "error.code", "code")
	switch {
	case res[0].Type == gjson.String && res[0].String() != "":
		e.Message = res[0].String()
	case res[1].Type == gjson.String && res[1].String() != "":
		e.Message = res[1].String()
	case res[2].Type == gjson.String:
		e.Message = res[2].String()
	}

	if res[3].Exists() {
		e.Code = res[3].String()
	} else if res[4].Type == gjson.String {
		e.Code = res[4].String()
	}
	return e
}
