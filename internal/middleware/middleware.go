package middleware

import (
	"context"

	"github.com/akolanti/DocBridgeAPI/internal/adapter/utils"
	"github.com/akolanti/DocBridgeAPI/internal/config"
)

func injectTrace(re requestResponseStruct) requestResponseStruct {
	req := re.req
	trace := req.Header.Get(config.TRACE_HEADER)
	if trace == "" {
		trace = utils.GetNewUUID()
	}
	re.logger = re.logger.With("traceId", trace)
	ctx := context.WithValue(req.Context(), config.TRACE_ID_KEY, trace)
	req.Header.Set(config.TRACE_HEADER, trace)
	re.writer.Header().Set(config.TRACE_HEADER, trace)
	re.req = req.WithContext(ctx)
	return re
}
