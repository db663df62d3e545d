// service/subconfig_service.go
package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// httpsPorts are the TLS ports the edge accepts tunnel traffic on.
var httpsPorts = []int{443, 2053, 2083, 2087, 2096, 8443}

// ISubConfigService renders per-subscriber client configuration text.
// The output is opaque to the gateway; clients consume it directly.
type ISubConfigService interface {
	XrayConfig(subscriberID string) string
	SingBoxConfig(subscriberID string) (string, error)
	ClashConfig(subscriberID string) (string, error)
}

type SubConfigService struct {
	host string
}

var _ ISubConfigService = &SubConfigService{}

// NewSubConfigService creates a renderer bound to the public hostname
// clients connect to.
func NewSubConfigService(host string) *SubConfigService {
	return &SubConfigService{host: host}
}

// XrayConfig renders one share link per TLS port.
func (s *SubConfigService) XrayConfig(subscriberID string) string {
	var b strings.Builder
	for _, port := range httpsPorts {
		fmt.Fprintf(&b,
			"vless://%s@%s:%d?encryption=none&security=tls&sni=%s&type=ws&host=%s&path=%%2F%s#%s-%d\n",
			subscriberID, s.host, port, s.host, s.host, subscriberID, s.host, port)
	}
	return b.String()
}

// SingBoxConfig renders a sing-box outbound document.
func (s *SubConfigService) SingBoxConfig(subscriberID string) (string, error) {
	doc := map[string]interface{}{
		"outbounds": []map[string]interface{}{
			{
				"type":        "vless",
				"tag":         s.host,
				"server":      s.host,
				"server_port": 443,
				"uuid":        subscriberID,
				"tls": map[string]interface{}{
					"enabled":     true,
					"server_name": s.host,
				},
				"transport": map[string]interface{}{
					"type": "ws",
					"path": "/" + subscriberID,
					"headers": map[string]string{
						"Host": s.host,
					},
				},
			},
		},
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render sing-box config: %w", err)
	}
	return string(out), nil
}

type clashProxy struct {
	Name    string                 `yaml:"name"`
	Type    string                 `yaml:"type"`
	Server  string                 `yaml:"server"`
	Port    int                    `yaml:"port"`
	UUID    string                 `yaml:"uuid"`
	TLS     bool                   `yaml:"tls"`
	Network string                 `yaml:"network"`
	SNI     string                 `yaml:"servername"`
	WSOpts  map[string]interface{} `yaml:"ws-opts"`
}

type clashDocument struct {
	Proxies []clashProxy `yaml:"proxies"`
}

// ClashConfig renders a clash proxy list, one entry per TLS port.
func (s *SubConfigService) ClashConfig(subscriberID string) (string, error) {
	doc := clashDocument{}
	for _, port := range httpsPorts {
		doc.Proxies = append(doc.Proxies, clashProxy{
			Name:    fmt.Sprintf("%s-%d", s.host, port),
			Type:    "vless",
			Server:  s.host,
			Port:    port,
			UUID:    subscriberID,
			TLS:     true,
			Network: "ws",
			SNI:     s.host,
			WSOpts: map[string]interface{}{
				"path": "/" + subscriberID,
				"headers": map[string]string{
					"Host": s.host,
				},
			},
		})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to render clash config: %w", err)
	}
	return string(out), nil
}
