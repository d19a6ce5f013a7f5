package cli

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	envFileVar     = "HUBCONN_ENV_FILE"
	defaultEnvFile = ".env"
)

// loadEnvFile loads HUBCONN_* variables from the file named by HUBCONN_ENV_FILE,
// or from .env in the working directory. Variables already set in the process
// environment are not overridden.
// A missing default file is ignored; a missing explicit file is an error.
func loadEnvFile() error {
	filename, explicit := os.LookupEnv(envFileVar)
	if !explicit || filename == "" {
		filename = defaultEnvFile
		if _, err := os.Stat(filename); os.IsNotExist(err) {
			return nil
		}
	}
	if err := godotenv.Load(filename); err != nil {
		return err
	}
	logger.WithField("file", filename).Debug("loaded environment file")
	return nil
}
