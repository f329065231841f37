// Command confctl resolves layered configuration files with environment
// overrides.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-better-config/internal/cli"
	"github.com/MKhiriev/go-better-config/internal/logger"
	"github.com/MKhiriev/go-better-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if err := cli.NewRootCommand(info).ExecuteContext(ctx); err != nil {
		stop()
		log := logger.NewLogger("confctl")
		log.Fatal().Err(err).Msg("confctl failed")
	}
}
