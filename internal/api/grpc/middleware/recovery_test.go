package middleware

import (
	"context"
	"testing"

	"github.com/dtroode/spacegame-server/internal/testutil"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestRecovery_HandlePanic(t *testing.T) {
	t.Parallel()

	r := NewRecovery(testutil.MakeNoopLogger())
	interceptor := recovery.UnaryServerInterceptor(recovery.WithRecoveryHandler(r.HandlePanic))

	info := &grpc.UnaryServerInfo{FullMethod: "/svc/Method"}
	resp, err := interceptor(context.Background(), struct{}{}, info, func(ctx context.Context, req any) (any, error) {
		panic("boom")
	})

	require.Error(t, err)
	assert.Nil(t, resp)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "internal server error", st.Message())
}
