// controller/controllers.go
package controller

// Controllers groups every handler set the router mounts.
type Controllers struct {
	Admin      *AdminController
	Subscriber *SubscriberController
	Tunnel     *TunnelController
	DoH        *DoHController
	Fallback   *FallbackController
}
