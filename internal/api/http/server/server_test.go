package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/spacegame-server/internal/mocks"
	listeners "github.com/dtroode/spacegame-server/internal/server"
)

func TestHTTPServer_Lifecycle(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()

	sl := mocks.NewSecurityLayer(t)
	sl.On("Listen", "tcp", addr).Return(ln, nil).Once()

	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})
	s := NewHTTPServer(h, addr, time.Second)
	assert.Equal(t, addr, s.Address())

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start(sl) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(fmt.Sprintf("http://%s/", addr))
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	require.NoError(t, <-errCh)
}

func TestHTTPServer_ListenError(t *testing.T) {
	sl := mocks.NewSecurityLayer(t)
	sl.On("Listen", "tcp", ":0").Return(nil, assert.AnError).Once()

	s := NewHTTPServer(http.NotFoundHandler(), ":0", time.Second)

	err := s.Start(sl)
	require.ErrorIs(t, err, assert.AnError)
}

func TestHTTPServer_WithPlainListener(t *testing.T) {
	s := NewHTTPServer(http.NotFoundHandler(), "127.0.0.1:0", time.Second)

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start(listeners.NewPlainListener()) }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))
	require.NoError(t, <-errCh)
}
