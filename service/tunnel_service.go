// service/tunnel_service.go
package service

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	logger "github.com/edgegate-io/tunnelgate/logging"
)

// ITunnelService is the tunnel collaborator admitted requests are handed
// to. The data-plane protocol itself is outside this gateway; the relay
// just moves bytes between the admitted client and the backend.
type ITunnelService interface {
	Relay(w http.ResponseWriter, r *http.Request) error
}

// TunnelService splices the upgraded client connection to the configured
// tunnel backend.
type TunnelService struct {
	backend     string
	dialTimeout time.Duration
}

var _ ITunnelService = &TunnelService{}

func NewTunnelService(backend string) *TunnelService {
	return &TunnelService{
		backend:     backend,
		dialTimeout: 10 * time.Second,
	}
}

// Relay hijacks the client connection, replays the upgrade request to the
// backend unchanged, and copies bytes in both directions until either
// side closes.
func (t *TunnelService) Relay(w http.ResponseWriter, r *http.Request) error {
	hijacker, ok := w.(http.Hijacker)
	if !ok {
		return fmt.Errorf("response writer does not support hijacking")
	}

	backendConn, err := net.DialTimeout("tcp", t.backend, t.dialTimeout)
	if err != nil {
		return fmt.Errorf("failed to dial tunnel backend: %w", err)
	}

	clientConn, clientBuf, err := hijacker.Hijack()
	if err != nil {
		backendConn.Close()
		return fmt.Errorf("failed to hijack client connection: %w", err)
	}

	// The backend owns the upgrade handshake; replay the request as
	// received.
	if err := r.Write(backendConn); err != nil {
		clientConn.Close()
		backendConn.Close()
		return fmt.Errorf("failed to forward upgrade request: %w", err)
	}

	logger.Debug("Tunnel relay established",
		zap.String("client", clientConn.RemoteAddr().String()),
		zap.String("backend", t.backend))

	done := make(chan struct{}, 2)
	go func() {
		// clientBuf may hold bytes read ahead of the hijack.
		io.Copy(backendConn, clientBuf)
		done <- struct{}{}
	}()
	go func() {
		io.Copy(clientConn, backendConn)
		done <- struct{}{}
	}()
	<-done

	clientConn.Close()
	backendConn.Close()
	return nil
}
