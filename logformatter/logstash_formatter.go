package logformatter

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/smancke/hubconn/connstr"
)

const (
	defaultServiceName     = "hubconn"
	defaultLogType         = "application"
	defaultApplicationType = "cli"
)

// DefaultSecretFields are the entry fields masked when SecretFields is nil.
var DefaultSecretFields = []string{"secret", "accessSecret", "sharedAccessKey"}

// LogstashFormatter generates json in logstash format.
// Logstash site: http://logstash.net/
type LogstashFormatter struct {
	// Type if not empty is used for the logstash type field.
	Type string

	// Env is the environment on which the application is running
	Env string

	// ServiceName is by default hubconn
	ServiceName string

	// ApplicationType is by default "cli"
	ApplicationType string

	// LogType is by default "application". Other possible values "access", "error", "system"
	LogType string

	// TimestampFormat sets the format used for timestamps.
	TimestampFormat string

	// SecretFields names entry fields whose string values are masked.
	// Matching ignores case.
	SecretFields []string
}

// Format the logrus entry to a byte slice, or return an error.
func (f *LogstashFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	fields := make(logrus.Fields, len(entry.Data)+8)

	for k, v := range entry.Data {
		switch v := v.(type) {
		case error:
			// errors are otherwise marshalled as {}
			fields[k] = v.Error()
		case string:
			if f.isSecret(k) {
				fields[k] = connstr.Mask(v)
			} else {
				fields[k] = v
			}
		default:
			fields[k] = v
		}
	}

	fields["environment"] = f.Env
	fields["@timestamp"] = entry.Time.Format(valueOr(f.TimestampFormat, time.RFC3339))
	fields["service"] = valueOr(f.ServiceName, defaultServiceName)
	fields["application_type"] = valueOr(f.ApplicationType, defaultApplicationType)
	fields["log_type"] = valueOr(f.LogType, defaultLogType)

	// clashing entry fields are kept with a "fields." prefix
	prefixClash(fields, entry.Data, "msg", entry.Message)
	prefixClash(fields, entry.Data, "loglevel", entry.Level.String())
	if hostname, err := os.Hostname(); err == nil {
		prefixClash(fields, entry.Data, "host", hostname)
	}
	if f.Type != "" {
		prefixClash(fields, entry.Data, "type", f.Type)
	}

	serialized, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fields to JSON: %v", err)
	}
	return append(serialized, '\n'), nil
}

func (f *LogstashFormatter) isSecret(field string) bool {
	names := f.SecretFields
	if names == nil {
		names = DefaultSecretFields
	}
	for _, name := range names {
		if strings.EqualFold(name, field) {
			return true
		}
	}
	return false
}

func prefixClash(fields, data logrus.Fields, key string, value interface{}) {
	if v, ok := data[key]; ok {
		fields["fields."+key] = v
	}
	fields[key] = value
}

func valueOr(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
