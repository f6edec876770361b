package server

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/dtroode/spacegame-server/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

func TestGRPCServer_Address(t *testing.T) {
	s := NewGRPCServer(grpc.NewServer(), ":0")
	assert.Equal(t, ":0", s.Address())
}

func TestGRPCServer_Stop(t *testing.T) {
	s := NewGRPCServer(grpc.NewServer(), ":0")
	err := s.Stop(context.Background())
	assert.NoError(t, err)
}

func TestGRPCServer_Start_ListensAndServes(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer(grpc.NewServer(), ":0")
	sec := mocks.NewSecurityLayer(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	sec.On("Listen", "tcp", ":0").Return(ln, nil)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(sec) }()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", ln.Addr().String())
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, srv.Stop(context.Background()))

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Start did not return after Stop")
	}
}

func TestGRPCServer_Start_ListenError(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer(grpc.NewServer(), ":bad")
	sec := mocks.NewSecurityLayer(t)
	sec.On("Listen", "tcp", ":bad").Return(nil, errors.New("address in use"))

	err := srv.Start(sec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

func TestGRPCServer_Stop_ContextExpired(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer(grpc.NewServer(), ":0")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := srv.Stop(ctx)
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}
