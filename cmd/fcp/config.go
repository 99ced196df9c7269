package main

import (
	"fmt"
	"strconv"

	"github.com/joho/godotenv"
)

// Configuration keys readable from an env-style configuration file.
const (
	keyBufferSize = "FCP_BUFFER_SIZE"
	keyVerify     = "FCP_VERIFY"
	keyCompress   = "FCP_COMPRESS"
	keyLimitMBps  = "FCP_LIMIT_MBPS"
	keyUI         = "FCP_UI"
)

// Compression selections for the destination encoding.
const (
	compressNone = "none"
	compressGzip = "gzip"
	compressLz4  = "lz4"
)

// Config is the principal structure holding the transfer configuration.
type Config struct {
	BufferSize int
	Verify     bool
	Compress   string
	LimitMBps  int
	UIEnabled  bool
}

// DefaultConfig returns a pointer to a new [Config] with the defaults used
// when no configuration file or flag overrides them.
func DefaultConfig() *Config {
	return &Config{
		BufferSize: 0, // 0 selects the source's optimal block size
		Verify:     true,
		Compress:   compressNone,
		LimitMBps:  0,
		UIEnabled:  true,
	}
}

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// GodotenvProvider is an implementation wrapping the Godotenv framework.
type GodotenvProvider struct{}

// Read reads generic Unix-type configuration files into a map
// (map[key]value).
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	data, err := godotenv.Read(filenames...)
	if err != nil {
		return data, fmt.Errorf("(config-godotenv) %w", err)
	}

	return data, nil
}

// ConfigHandler reads transfer configuration through a generic provider.
type ConfigHandler struct {
	GenericHandler genericConfigProvider
}

// NewConfigHandler returns a pointer to a new [ConfigHandler].
func NewConfigHandler(genericHandler genericConfigProvider) *ConfigHandler {
	return &ConfigHandler{
		GenericHandler: genericHandler,
	}
}

// Load merges the keys of the given configuration file over the defaults.
func (c *ConfigHandler) Load(filename string) (*Config, error) {
	config := DefaultConfig()
	if filename == "" {
		return config, nil
	}

	envMap, err := c.GenericHandler.Read(filename)
	if err != nil {
		return nil, fmt.Errorf("(config) %w", err)
	}

	if v := c.MapKeyToInt(envMap, keyBufferSize); v >= 0 {
		config.BufferSize = v
	}
	if v, ok := c.MapKeyToBool(envMap, keyVerify); ok {
		config.Verify = v
	}
	if v := c.MapKeyToString(envMap, keyCompress); v != "" {
		config.Compress = v
	}
	if v := c.MapKeyToInt(envMap, keyLimitMBps); v >= 0 {
		config.LimitMBps = v
	}
	if v, ok := c.MapKeyToBool(envMap, keyUI); ok {
		config.UIEnabled = v
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration for unusable selections.
func (c *Config) Validate() error {
	switch c.Compress {
	case compressNone, compressGzip, compressLz4:
	default:
		return fmt.Errorf("(config) %w: %s", ErrUnknownCompression, c.Compress)
	}

	return nil
}

// MapKeyToString returns the string value for key, or an empty string when
// the key is absent.
func (c *ConfigHandler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// MapKeyToInt returns the integer value for key, or -1 when the key is
// absent or not an integer.
func (c *ConfigHandler) MapKeyToInt(envMap map[string]string, key string) int {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return -1
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}

	return intValue
}

// MapKeyToBool returns the boolean value for key and whether the key held
// a parseable boolean.
func (c *ConfigHandler) MapKeyToBool(envMap map[string]string, key string) (bool, bool) {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return false, false
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, false
	}

	return boolValue, true
}
