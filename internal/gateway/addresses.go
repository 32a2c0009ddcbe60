package gateway

import (
	"fmt"
	"strings"
)

// Service identifies one of the four logical backends.
type Service string

const (
	ServiceUser         Service = "user"
	ServiceProduct      Service = "product"
	ServiceOrder        Service = "order"
	ServiceNotification Service = "notification"
)

// Fixed local ports in development mode; each service mounts its API under
// the /api prefix.
var devPorts = map[Service]string{
	ServiceUser:         "8081",
	ServiceOrder:        "8082",
	ServiceProduct:      "8083",
	ServiceNotification: "8084",
}

// Fixed production addresses (Cloud Run).
var prodURLs = map[Service]string{
	ServiceUser:         "https://user-service-71511467925.europe-west1.run.app/api",
	ServiceOrder:        "https://order-service-71511467925.europe-west1.run.app/api",
	ServiceProduct:      "https://product-service-71511467925.europe-west1.run.app/api",
	ServiceNotification: "https://notification-service-71511467925.europe-west1.run.app/api",
}

// Overrides holds explicit per-service base URLs. An empty field means "no
// override".
type Overrides struct {
	User         string
	Product      string
	Order        string
	Notification string
}

// Addresses maps each service to its resolved base URL.
type Addresses map[Service]string

// ResolveAddresses computes one base URL per service, applying the
// precedence: explicit override, else development address set, else
// production address set. Resolution happens once at startup; it is not
// re-evaluated per request.
func ResolveAddresses(env string, o Overrides) Addresses {
	overrides := map[Service]string{
		ServiceUser:         o.User,
		ServiceProduct:      o.Product,
		ServiceOrder:        o.Order,
		ServiceNotification: o.Notification,
	}

	addrs := make(Addresses, len(devPorts))
	for svc := range devPorts {
		addrs[svc] = resolve(svc, env, overrides[svc])
	}
	return addrs
}

func resolve(svc Service, env, override string) string {
	if override != "" {
		return strings.TrimRight(override, "/")
	}
	if env == "development" {
		return fmt.Sprintf("http://localhost:%s/api", devPorts[svc])
	}
	return prodURLs[svc]
}
