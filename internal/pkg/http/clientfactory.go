package http

import (
	"fmt"

	"github.com/iancoleman/strcase"

	pkgenv "github.com/usergraph/social-service/pkg/env"
	pkghttp "github.com/usergraph/social-service/pkg/http"
)

const RequestIDHeader = pkghttp.DefaultRequestIDHeader

const DestinationSocialService pkghttp.Destination = "social"

type ClientFactory struct {
	impl pkghttp.ClientFactory
}

func NewClientFactory(opts ...pkghttp.ClientOption) ClientFactory {
	return ClientFactory{
		impl: pkghttp.NewClientFactory(opts...),
	}
}

// MustInitClient resolves the destination base URL from the
// <DESTINATION>_SERVICE_URL environment variable.
func (f ClientFactory) MustInitClient(dest pkghttp.Destination, extraOpts ...pkghttp.ClientOption) pkghttp.Client {
	hostEnv := fmt.Sprintf("%s_SERVICE_URL", strcase.ToScreamingSnake(string(dest)))
	host := pkgenv.Must(pkgenv.Parse[string](hostEnv))

	return f.impl.InitClient(dest, host, extraOpts...)
}
