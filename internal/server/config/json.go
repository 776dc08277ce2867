package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mlajnef/rpc-messenger/internal/flagx"
)

// jsonDuration accepts both string values such as "2s" and integer
// nanoseconds, so JSON files can spell durations either way.
type jsonDuration struct {
	time.Duration
}

func (d *jsonDuration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return &json.UnsupportedTypeError{}
	}
}

// JsonConfig is the DTO used only for reading JSON configuration files;
// after unmarshalling, set fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrGRPC      string       `json:"endpoint_addr_grpc"`
	DatabaseDSN           string       `json:"database_dsn"`
	CipherKey             string       `json:"cipher_key"`
	SecondaryAddr         string       `json:"secondary_addr"`
	ReplicationTimeout    jsonDuration `json:"replication_timeout"`
	SecondaryEndpointGRPC string       `json:"secondary_endpoint_grpc"`
	SecondaryDSN          string       `json:"secondary_dsn"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config flags into the provided Config. Absent fields keep the
// values already in place; an unreadable or invalid file panics, since
// starting with half a config is worse than not starting.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.CipherKey != "" {
		config.CipherKey = c.CipherKey
	}
	if c.SecondaryAddr != "" {
		config.SecondaryAddr = c.SecondaryAddr
	}
	if c.ReplicationTimeout.Duration != 0 {
		config.ReplicationTimeout = c.ReplicationTimeout.Duration
	}
	if c.SecondaryEndpointGRPC != "" {
		config.SecondaryEndpointGRPC = c.SecondaryEndpointGRPC
	}
	if c.SecondaryDSN != "" {
		config.SecondaryDSN = c.SecondaryDSN
	}
}
