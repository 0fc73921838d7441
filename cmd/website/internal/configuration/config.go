package configuration

import (
	"log/slog"
	"time"

	"github.com/adampresley/configinator"
	"github.com/joho/godotenv"
)

type Config struct {
	ApiURL                     string `flag:"apiurl" env:"API_URL" default:"http://localhost:8080/api" description:"Root URL of the Spring-a-gram REST API"`
	ArchiveEnabled             bool   `flag:"archive" env:"ARCHIVE_ENABLED" default:"false" description:"Copy photos into S3 when they are added to a gallery"`
	ArchiveFolder              string `flag:"archivefolder" env:"ARCHIVE_FOLDER" default:"archive" description:"S3 folder for archived photos"`
	ArchiveRetentionDays       int    `flag:"archiveretention" env:"ARCHIVE_RETENTION_DAYS" default:"0" description:"Number of days to keep archived photos. 0 keeps them forever"`
	ArchiveSyncIntervalMinutes int    `flag:"archivesync" env:"ARCHIVE_SYNC_INTERVAL_MINUTES" default:"60" description:"Minutes between archive sync runs over every gallery"`
	AwsEndpointUrl             string `flag:"awsep" env:"AWS_ENDPOINT_URL" default:"http://localhost:4566" description:"AWS endpoint URL"`
	AwsRegion                  string `flag:"awsregion" env:"AWS_REGION" default:"us-east-1" description:"AWS region"`
	AwsAccessKeyId             string `flag:"awsaccesskeyid" env:"AWS_ACCESS_KEY_ID" default:"" description:"AWS access key ID"`
	AwsSecretAccessKey         string `flag:"awssecretaccesskey" env:"AWS_SECRET_ACCESS_KEY" default:"" description:"AWS secret access key"`
	AwsBucket                  string `flag:"awsbucket" env:"AWS_BUCKET" default:"springagram" description:"S3 bucket"`
	DSN                        string `flag:"dsn" env:"DSN" default:"file:./data/springagram.db" description:"Data source name for the action history"`
	Host                       string `flag:"host" env:"HOST" default:"localhost:8081" description:"The address and port to bind the HTTP server to"`
	LogLevel                   string `flag:"loglevel" env:"LOG_LEVEL" default:"debug" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	MaxTaskWorkers             int    `flag:"mtw" env:"MAX_TASK_WORKERS" default:"4" description:"Maximum number of concurrent API tasks"`
	RequestTimeoutSeconds      int    `flag:"timeout" env:"REQUEST_TIMEOUT_SECONDS" default:"30" description:"Timeout for a single API request"`
	UserAgent                  string `flag:"useragent" env:"USER_AGENT" default:"springagram-web" description:"User-Agent sent to the API"`
}

/*
LoadConfig reads an optional .env file into the environment, then resolves
flags, environment and defaults.
*/
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	config := Config{}
	configinator.Behold(&config)
	return config
}

func (c Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return 30 * time.Second
	}

	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

func (c Config) ArchiveSyncInterval() time.Duration {
	if c.ArchiveSyncIntervalMinutes <= 0 {
		return time.Hour
	}

	return time.Duration(c.ArchiveSyncIntervalMinutes) * time.Minute
}
