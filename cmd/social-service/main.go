package main

import (
	"context"

	"github.com/usergraph/social-service/internal/pkg/cmd"
	"github.com/usergraph/social-service/internal/social"
	pkgcmd "github.com/usergraph/social-service/pkg/cmd"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	container := social.NewDependencyContainer(
		infra.StorageMode,
		infra.DB,
		infra.DBMigrations,
		infra.Logger,
	)

	httpServer := infra.HTTPServer.MustLoad()
	container.MustRegisterHTTPHandlers(httpServer)

	pkgcmd.MustRun(ctx, infra.Logger.MustLoad(),
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
