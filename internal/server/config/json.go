package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/filecatalog/internal/flagx"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct.
type JsonConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	DatabaseDSN      string `json:"database_dsn"`
	DatabaseName     string `json:"database_name"`
	AuthServiceAddr  string `json:"auth_service_addr"`
	FileServiceAddr  string `json:"file_service_addr"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; without one, no JSON file is loaded. An unreadable or invalid file
// panics, since the caller explicitly asked for it.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.DatabaseDSN = c.DatabaseDSN
	config.DatabaseName = c.DatabaseName
	config.AuthServiceAddr = c.AuthServiceAddr
	config.FileServiceAddr = c.FileServiceAddr
}
