// service/doh_service.go
package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/miekg/dns"
	"go.uber.org/zap"

	logger "github.com/edgegate-io/tunnelgate/logging"
)

const dnsMessageType = "application/dns-message"

// IDoHService forwards DNS-over-HTTPS queries to the upstream resolver.
type IDoHService interface {
	ForwardGet(ctx context.Context, dnsParam string) (*http.Response, error)
	ForwardPost(ctx context.Context, body io.Reader) (*http.Response, error)
}

// DoHService is a stateless relay: the upstream's status, headers and
// body are the response, untouched. The raw net/http client is used here
// because the body must stream through without buffering.
type DoHService struct {
	upstream string
	client   *http.Client
}

var _ IDoHService = &DoHService{}

func NewDoHService(upstream string) *DoHService {
	return &DoHService{
		upstream: upstream,
		client:   &http.Client{},
	}
}

// ForwardGet relays a GET query carried in the base64url dns parameter.
func (s *DoHService) ForwardGet(ctx context.Context, dnsParam string) (*http.Response, error) {
	s.logQueryName(dnsParam)

	u, err := url.Parse(s.upstream)
	if err != nil {
		return nil, fmt.Errorf("invalid DoH upstream: %w", err)
	}
	q := u.Query()
	q.Set("dns", dnsParam)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", dnsMessageType)

	return s.client.Do(req)
}

// ForwardPost relays a POST query carried as a raw DNS wire message body.
func (s *DoHService) ForwardPost(ctx context.Context, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.upstream, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", dnsMessageType)
	req.Header.Set("Accept", dnsMessageType)

	return s.client.Do(req)
}

// logQueryName unpacks the wire message for debug logging. An
// unparseable message is still forwarded; the upstream is authoritative
// on validity.
func (s *DoHService) logQueryName(dnsParam string) {
	raw, err := base64.RawURLEncoding.DecodeString(dnsParam)
	if err != nil {
		logger.Debug("DoH dns parameter is not valid base64url", zap.Error(err))
		return
	}

	var msg dns.Msg
	if err := msg.Unpack(raw); err != nil {
		logger.Debug("DoH query did not unpack as a DNS message", zap.Error(err))
		return
	}
	if len(msg.Question) > 0 {
		logger.Debug("Relaying DoH query", zap.String("qname", msg.Question[0].Name))
	}
}
