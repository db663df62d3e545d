// service/profile_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	gateway_errors "github.com/edgegate-io/tunnelgate/errors"
	logger "github.com/edgegate-io/tunnelgate/logging"
	"github.com/edgegate-io/tunnelgate/model"
)

// geoFields limits the geolocation response to what the info page shows.
const geoFields = "status,message,country,regionName,city,isp,org,as,query"

// IProfileService builds the /{id}/info payload.
type IProfileService interface {
	GetProfile(ctx context.Context, clientIP string) (*model.Profile, error)
}

// ProfileService resolves the caller's address against a geolocation
// endpoint and pairs it with the configured tunnel-exit identity.
type ProfileService struct {
	client   *resty.Client
	endpoint string
	proxyIP  string
}

var _ IProfileService = &ProfileService{}

func NewProfileService(endpoint, proxyIP string) *ProfileService {
	return &ProfileService{
		client:   resty.New().SetTimeout(5 * time.Second),
		endpoint: endpoint,
		proxyIP:  proxyIP,
	}
}

func (s *ProfileService) GetProfile(ctx context.Context, clientIP string) (*model.Profile, error) {
	var info model.ClientInfo
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("fields", geoFields).
		SetResult(&info).
		Get(fmt.Sprintf("%s/%s", s.endpoint, clientIP))
	if err != nil {
		logger.Error("Geolocation lookup failed", zap.Error(err), zap.String("clientIP", clientIP))
		return nil, gateway_errors.ErrUpstreamFailure
	}
	if resp.IsError() {
		logger.Error("Geolocation lookup returned an error status",
			zap.Int("status", resp.StatusCode()),
			zap.String("clientIP", clientIP))
		return nil, gateway_errors.ErrUpstreamFailure
	}

	return &model.Profile{
		ClientInfo: info,
		ProxyInfo:  model.ProxyInfo{IP: s.proxyIP},
	}, nil
}
