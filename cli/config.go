package cli

import (
	"net/url"

	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/smancke/hubconn/connstr"
)

const (
	buildCommand   = "build"
	inspectCommand = "inspect"

	development   = "dev"
	integration   = "int"
	preproduction = "pre"
	production    = "prod"
)

var environments = []string{development, integration, preproduction, production}

type (
	// BuildConfig holds the options of the build command.
	BuildConfig struct {
		Endpoint **url.URL
		Access   *string
		KeyName  *string
		Secret   *string
		Masked   *bool
	}
	// InspectConfig holds the options of the inspect command.
	InspectConfig struct {
		ConnectionString *string
		Reveal           *bool
	}
	// Config is used for configuring hubconn.
	Config struct {
		Log     *string
		EnvName *string
		Build   BuildConfig
		Inspect InspectConfig
	}
)

func newApp() (*kingpin.Application, *Config) {
	app := kingpin.New("hubconn", "Builds and inspects Notification Hub connection strings.")

	build := app.Command(buildCommand, "Build a connection string from an endpoint and a shared access secret.")
	inspect := app.Command(inspectCommand, "Show the parts of a connection string.")

	config := &Config{
		Log: app.Flag("log", "Log level").
			Default(log.ErrorLevel.String()).
			Envar("HUBCONN_LOG").
			Enum(logLevels()...),
		EnvName: app.Flag("env", `Name of the environment on which the application is running`).
			Default(development).
			Envar("HUBCONN_ENV").
			Enum(environments...),
		Build: BuildConfig{
			Endpoint: build.Flag("endpoint", `The Notification Hub namespace endpoint (e.g. "sb://<namespace>.servicebus.windows.net/")`).
				Short('e').
				Envar("HUBCONN_ENDPOINT").
				URL(),
			Access: build.Flag("access", "The shared access policy: full | listen | custom").
				Default(string(connstr.FullAccess)).
				Envar("HUBCONN_ACCESS").
				Enum(connstr.AccessTiers()...),
			KeyName: build.Flag("key-name", "The shared access policy name (only used with --access=custom)").
				Short('k').
				Envar("HUBCONN_KEY_NAME").
				String(),
			Secret: build.Flag("secret", "The shared access secret").
				Short('s').
				Envar("HUBCONN_SECRET").
				String(),
			Masked: build.Flag("masked", "Mask the secret in the printed connection string").
				Envar("HUBCONN_MASKED").
				Bool(),
		},
		Inspect: InspectConfig{
			ConnectionString: inspect.Arg("connection-string", "The connection string to inspect").
				Required().
				String(),
			Reveal: inspect.Flag("reveal", "Print the shared access secret unmasked").
				Bool(),
		},
	}
	return app, config
}

func logLevels() (levels []string) {
	for _, level := range log.AllLevels {
		levels = append(levels, level.String())
	}
	return
}
