package adapter

import (
	"encoding/json"
	"net/http"

	"github.com/evolt-dev/evolt/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	serverErr := &ServerError{StatusCode: resp.StatusCode()}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		serverErr.Message = body.Error
	} else {
		serverErr.Message = http.StatusText(resp.StatusCode())
	}

	return serverErr
}
