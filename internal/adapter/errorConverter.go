package adapter

import (
	"net/http"

	"github.com/akolanti/DocBridgeAPI/internal/api"
	"github.com/akolanti/DocBridgeAPI/internal/domain/commonModels"
)

var statusByKind = map[commonModels.ErrorKind]int{
	commonModels.KindValidation:     http.StatusBadRequest,
	commonModels.KindAuthentication: http.StatusBadRequest,
	commonModels.KindNotConnected:   http.StatusNotFound,
	commonModels.KindUpstream:       http.StatusBadGateway,
	commonModels.KindUpload:         http.StatusInternalServerError,
}

// StatusOf maps an error to the http status returned to the caller.
func StatusOf(err error) int {
	if status, ok := statusByKind[commonModels.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func ToErrorResponse(err error) (int, api.ErrorResponse) {
	status := StatusOf(err)
	return status, BadRequest(commonModels.MessageOf(err), status)
}

func BadRequest(message string, code int) api.ErrorResponse {
	return api.ErrorResponse{Error: message, Code: code}
}
