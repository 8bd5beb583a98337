package main

import (
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	cli "github.com/urfave/cli/v2"
	"golang.org/x/time/rate"

	"github.com/lodestar-social/lodestar/lemmy"
	"github.com/lodestar-social/lodestar/util"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

var instanceFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "host",
		Usage:    "method, hostname, and port of the Lemmy instance",
		Required: true,
		EnvVars:  []string{"LODESTAR_HOST"},
	},
	&cli.StringFlag{
		Name:     "auth-token",
		Usage:    "login session token for a moderator or admin account",
		Required: true,
		EnvVars:  []string{"LODESTAR_AUTH_TOKEN"},
	},
	&cli.Float64Flag{
		Name:    "request-rate",
		Usage:   "max outbound requests per second",
		Value:   5,
		EnvVars: []string{"LODESTAR_REQUEST_RATE"},
	},
	&cli.StringFlag{
		Name:    "log-level",
		Usage:   "log level: debug, info, warn, error",
		Value:   "info",
		EnvVars: []string{"LODESTAR_LOG_LEVEL"},
	},
}

func run(args []string) error {

	app := cli.App{
		Name:    "lodectl",
		Usage:   "moderation CLI for Lemmy-compatible instances",
		Version: versioninfo.Short(),
	}
	app.Commands = []*cli.Command{
		cmdReports,
		cmdResolve,
		cmdRemove,
		cmdBan,
		cmdPurge,
	}
	return app.Run(args)
}

func setupLogger(cctx *cli.Context) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

func configClient(cctx *cli.Context) *lemmy.Client {
	return &lemmy.Client{
		Client:  util.RobustHTTPClient(),
		Host:    cctx.String("host"),
		Auth:    &lemmy.AuthInfo{Jwt: cctx.String("auth-token")},
		Limiter: rate.NewLimiter(rate.Limit(cctx.Float64("request-rate")), 1),
	}
}
