package identity

import "encoding/json"

// errorBody covers the error shapes GoTrue has shipped over time: the legacy
// {"error","error_description"} pair, the {"msg","code"} form, and the newer
// {"error_code","msg"} form. Whatever field is populated wins.
type errorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func parseErrorBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return string(body)
	}

	switch {
	case parsed.Msg != "":
		return parsed.Msg
	case parsed.ErrorDescription != "":
		return parsed.ErrorDescription
	case parsed.Message != "":
		return parsed.Message
	default:
		return parsed.Error
	}
}
