package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

// Config loads application settings from optional configuration files
// (yaml, toml or json, chosen by extension) and then applies environment
// overrides. Env names are the ENVPrefix joined with the upper-cased field
// path, e.g. HALLBOARD_WEATHER_APIKEY for cfg.Weather.APIKey.
type Config struct {
	*Settings
}

type Settings struct {
	ENVPrefix string
	Debug     bool
}

// New initialize a Config
func New(cfg *Settings) *Config {
	if cfg == nil {
		cfg = &Settings{}
	}

	if os.Getenv("CONFIG_DEBUG_MODE") != "" {
		cfg.Debug = true
	}

	return &Config{Settings: cfg}
}

// Load will unmarshal configurations to struct from files that you provide.
// A file that does not exist is skipped, not an error; config may come from
// the environment alone.
func (c *Config) Load(cfg interface{}, files ...string) error {
	if !reflect.Indirect(reflect.ValueOf(cfg)).CanAddr() {
		return fmt.Errorf("config %v should be addressable", cfg)
	}

	for _, file := range files {
		if err := processFile(cfg, file); err != nil {
			return err
		}
	}

	prefix := c.ENVPrefix
	if prefix == "" {
		prefix = "CONFIG"
	}
	return processEnv(cfg, prefix)
}

func processFile(cfg interface{}, file string) error {
	data, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	switch {
	case strings.HasSuffix(file, ".yaml") || strings.HasSuffix(file, ".yml"):
		return yaml.Unmarshal(data, cfg)
	case strings.HasSuffix(file, ".toml"):
		return toml.Unmarshal(data, cfg)
	case strings.HasSuffix(file, ".json"):
		return json.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config file %v", file)
	}
}

func processEnv(cfg interface{}, prefixes ...string) error {
	cfgValue := reflect.Indirect(reflect.ValueOf(cfg))
	if cfgValue.Kind() != reflect.Struct {
		return errors.New("invalid config, should be struct")
	}

	cfgType := cfgValue.Type()
	for i := 0; i < cfgType.NumField(); i++ {
		var (
			fieldStruct = cfgType.Field(i)
			field       = cfgValue.Field(i)
		)

		if !field.CanAddr() || !field.CanInterface() {
			continue
		}

		if field.Kind() == reflect.Struct {
			if err := processEnv(field.Addr().Interface(), append(prefixes, fieldStruct.Name)...); err != nil {
				return err
			}
			continue
		}

		envName := fieldStruct.Tag.Get("env")
		if envName == "" {
			envName = strings.ToUpper(strings.Join(append(prefixes, fieldStruct.Name), "_"))
		}
		value := os.Getenv(envName)
		if value == "" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(value)
		case reflect.Bool:
			switch strings.ToLower(value) {
			case "0", "f", "false":
				field.SetBool(false)
			default:
				field.SetBool(true)
			}
		case reflect.Int, reflect.Int64:
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("env %v: %w", envName, err)
			}
			field.SetInt(n)
		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				field.Set(reflect.ValueOf(strings.Split(value, ",")))
			}
		}
	}
	return nil
}
