package grpcserver

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
)

// RequestID tags every unary call with a fresh request id and logs its
// outcome. The id ties a client-reported failure to the server log
// without exposing anything about the instruction itself.
func RequestID() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		id := uuid.New()
		start := time.Now()

		resp, err := handler(ctx, req)

		if err != nil {
			log.Warnf("%s %s failed in %s: %v", id, info.FullMethod, time.Since(start), err)
		} else {
			log.Debugf("%s %s ok in %s", id, info.FullMethod, time.Since(start))
		}
		return resp, err
	}
}
