package model

// ClientInfo is the geolocation record returned for the caller's address.
type ClientInfo struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Country string `json:"country,omitempty"`
	Region  string `json:"regionName,omitempty"`
	City    string `json:"city,omitempty"`
	ISP     string `json:"isp,omitempty"`
	Org     string `json:"org,omitempty"`
	AS      string `json:"as,omitempty"`
	Query   string `json:"query,omitempty"`
}

// ProxyInfo identifies the tunnel exit the subscriber egresses through.
type ProxyInfo struct {
	IP string `json:"ip"`
}

// Profile is the /{id}/info response body.
type Profile struct {
	ClientInfo ClientInfo `json:"clientInfo"`
	ProxyInfo  ProxyInfo  `json:"proxyInfo"`
}
