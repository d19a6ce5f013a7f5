package cli

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/smancke/hubconn/connstr"
	"github.com/smancke/hubconn/logformatter"
)

//go:generate mockgen -package cli -destination mock_writer_test.go io Writer

// Main is the entry-point of the hubconn command.
func Main() {
	defer PanicLogger()

	if err := loadEnvFile(); err != nil {
		logger.WithError(err).Fatal("could not load environment file")
	}

	if err := Run(os.Args[1:], os.Stdout); err != nil {
		logger.WithError(err).Error("hubconn failed")
		fmt.Fprintf(os.Stderr, "hubconn: %v\n", err)
		os.Exit(1)
	}
}

// Run parses args, configures logging and executes the selected command,
// writing its result to out.
func Run(args []string, out io.Writer) error {
	app, config := newApp()
	command, err := app.Parse(args)
	if err != nil {
		return err
	}

	if err := configureLogging(config); err != nil {
		return err
	}

	switch command {
	case buildCommand:
		return runBuild(config.Build, out)
	case inspectCommand:
		return runInspect(config.Inspect, out)
	}
	return fmt.Errorf("unknown command %q", command)
}

func configureLogging(config *Config) error {
	log.SetFormatter(&logformatter.LogstashFormatter{Env: *config.EnvName})
	level, err := log.ParseLevel(*config.Log)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

func runBuild(config BuildConfig, out io.Writer) error {
	tier, err := connstr.ParseAccessTier(*config.Access)
	if err != nil {
		return err
	}

	endpoint, secret := *config.Endpoint, *config.Secret
	s, err := connstr.Build(endpoint, tier, *config.KeyName, secret)
	if err != nil {
		return err
	}
	if *config.Masked {
		// a masked non-blank secret is still non-blank
		s, _ = connstr.Build(endpoint, tier, *config.KeyName, connstr.Mask(secret))
	}

	logger.WithFields(log.Fields{
		"endpoint": endpoint.String(),
		"access":   tier,
		"secret":   connstr.Mask(secret),
	}).Info("connection string built")

	_, err = fmt.Fprintln(out, s)
	return err
}

func runInspect(config InspectConfig, out io.Writer) error {
	cs, err := connstr.Parse(*config.ConnectionString)
	if err != nil {
		return err
	}

	key := connstr.Mask(cs.Key)
	if *config.Reveal {
		key = cs.Key
	}

	logger.WithField("connectionString", cs.Masked()).Debug("connection string parsed")

	_, err = fmt.Fprintf(out, "Endpoint:            %s\nSharedAccessKeyName: %s\nSharedAccessKey:     %s\nAccess:              %s\n",
		cs.Endpoint, cs.KeyName, key, cs.AccessTier())
	return err
}
