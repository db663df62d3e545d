// service/subconfig_service_test.go
package service_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/edgegate-io/tunnelgate/service"
)

func TestSubConfigService(t *testing.T) {
	svc := service.NewSubConfigService("edge.example.com")

	t.Run("Xray_OneLinkPerPort", func(t *testing.T) {
		out := svc.XrayConfig(testSubscriberID)
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

		assert.Len(t, lines, 6)
		assert.Contains(t, lines[0], "vless://"+testSubscriberID+"@edge.example.com:443")
		assert.Contains(t, lines[0], "sni=edge.example.com")
		for _, line := range lines {
			assert.True(t, strings.HasPrefix(line, "vless://"))
		}
	})

	t.Run("SingBox_ValidJSON", func(t *testing.T) {
		out, err := svc.SingBoxConfig(testSubscriberID)
		assert.NoError(t, err)

		var doc map[string]interface{}
		assert.NoError(t, json.Unmarshal([]byte(out), &doc))

		outbounds, ok := doc["outbounds"].([]interface{})
		assert.True(t, ok)
		assert.Len(t, outbounds, 1)

		outbound := outbounds[0].(map[string]interface{})
		assert.Equal(t, testSubscriberID, outbound["uuid"])
		assert.Equal(t, "edge.example.com", outbound["server"])
	})

	t.Run("Clash_ValidYAML", func(t *testing.T) {
		out, err := svc.ClashConfig(testSubscriberID)
		assert.NoError(t, err)

		var doc struct {
			Proxies []struct {
				Name   string `yaml:"name"`
				Server string `yaml:"server"`
				Port   int    `yaml:"port"`
				UUID   string `yaml:"uuid"`
			} `yaml:"proxies"`
		}
		assert.NoError(t, yaml.Unmarshal([]byte(out), &doc))

		assert.Len(t, doc.Proxies, 6)
		assert.Equal(t, 443, doc.Proxies[0].Port)
		for _, proxy := range doc.Proxies {
			assert.Equal(t, testSubscriberID, proxy.UUID)
			assert.Equal(t, "edge.example.com", proxy.Server)
		}
	})
}
