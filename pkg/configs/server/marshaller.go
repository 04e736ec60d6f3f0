package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// load aptsalesd config from a file.
//
// Values in the file can refer environment variables, like `${DB_PASSWORD}`.
func LoadServerConfig(filepath string) (*ServerConfig, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Unmarshal([]byte(os.ExpandEnv(string(content))))
}

// Unmarshal parses yaml and seals it.
//
// Misconfiguration is returned as an error.
func Unmarshal(conf []byte) (out *ServerConfig, err error) {
	var m *ServerConfigMarshall
	if err := yaml.Unmarshal(conf, &m); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("config is empty")
	}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("misconfiguration: %v", r)
		}
	}()
	return TrySeal(m), nil
}
