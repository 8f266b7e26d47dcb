// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

const (
	// EnvFile names the variable that overrides the config file location.
	EnvFile = "AWSCTL_CFG_FILE"
	// FileName is looked up in os.UserConfigDir when EnvFile is unset.
	FileName = "awsctl.yaml"
)

// ErrNotFound is returned by getters for keys that are absent and have no
// default.
var ErrNotFound = errors.New("config key not found")

// Type is a loaded configuration document.
//
// Namespace is a dotted prefix, normally the running command ("lex",
// "ssm.params"). Lookups try Namespace+"."+key first and then key, so a
// per-command value shadows a global one.
type Type struct {
	Source    string
	Namespace string
	Data      map[string]any
}

// Config is the process-wide configuration, loaded lazily.
var Config Type

// Load reads the config file and replaces Config. A path argument wins over
// EnvFile and the user config directory.
func Load(path ...string) (Type, error) {
	var (
		file string
		err  error
	)
	if len(path) > 0 && path[0] != "" {
		file = path[0]
	} else if file, err = configFile(); err != nil {
		return Type{}, err
	}

	b, err := os.ReadFile(file)
	if err != nil {
		return Type{}, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(b, &data); err != nil {
		return Type{}, fmt.Errorf("parse %s: %w", file, err)
	}

	Config = Type{Source: file, Namespace: Config.Namespace, Data: data}
	return Config, nil
}

// SetNamespace sets the key prefix preferred by the getters.
func SetNamespace(ns string) {
	Config.Namespace = ns
}

// GetString returns the string at key, or defaultValue when key is absent.
func GetString(key string, defaultValue ...string) (string, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case int, int64, float64, bool:
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("%s: value is not a string", key)
	}
}

// GetInt returns the integer at key, or defaultValue when key is absent.
func GetInt(key string, defaultValue ...int) (int, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	// yaml.v3 decodes plain integers as int, larger ones as int64 or float64.
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("%s: value is not an int", key)
	}
}

// GetBool returns the boolean at key, or defaultValue when key is absent.
func GetBool(key string, defaultValue ...bool) (bool, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return false, err
	}

	b, ok := val.(bool)
	if !ok {
		return false, fmt.Errorf("%s: value is not a bool", key)
	}
	return b, nil
}

// GetDuration parses the value at key with time.ParseDuration. Bare numbers
// are taken as hours, which is how cache.clean has always been written.
func GetDuration(key string, defaultValue ...time.Duration) (time.Duration, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	switch v := val.(type) {
	case int:
		return time.Duration(v) * time.Hour, nil
	case float64:
		return time.Duration(v * float64(time.Hour)), nil
	case string:
		return time.ParseDuration(v)
	default:
		return 0, fmt.Errorf("%s: value is not a duration", key)
	}
}

// GetStringSlice returns the list at key, or defaultValue when key is
// absent. A scalar string is returned as a one element slice.
func GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return nil, err
	}

	switch v := val.(type) {
	case string:
		return []string{v}, nil
	case []any:
		result := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s[%d]: element is not a string", key, i)
			}
			result[i] = s
		}
		return result, nil
	default:
		return nil, fmt.Errorf("%s: value is not a list", key)
	}
}

func lookup(key string) (any, error) {
	if Config.Data == nil {
		if _, err := Load(); err != nil {
			log.Debugf("config not loaded: %v", err)
			Config.Data = map[string]any{}
		}
	}
	return Config.get(key)
}

func (cfg *Type) get(key string) (any, error) {
	candidates := []string{key}
	if cfg.Namespace != "" {
		candidates = []string{cfg.Namespace + "." + key, key}
	}

	for _, c := range candidates {
		if v, ok := walk(cfg.Data, strings.Split(c, ".")); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, strings.Join(candidates, ", "))
}

func walk(node any, keys []string) (any, bool) {
	for _, k := range keys {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		if node, ok = m[k]; !ok {
			return nil, false
		}
	}
	return node, true
}

// configFile resolves EnvFile, then FileName in os.UserConfigDir.
func configFile() (string, error) {
	if p := os.Getenv(EnvFile); p != "" {
		fi, err := os.Stat(p)
		if err != nil {
			return "", fmt.Errorf("%s: %w", EnvFile, err)
		}
		if fi.IsDir() {
			return "", fmt.Errorf("%s points to a directory: %s", EnvFile, p)
		}
		log.Debugf("using config file from %s: %s", EnvFile, p)
		return p, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	file := filepath.Join(dir, FileName)
	if fi, err := os.Stat(file); err == nil && !fi.IsDir() {
		log.Debugf("using config file: %s", file)
		return file, nil
	}
	return "", fmt.Errorf("no config file found: %s", file)
}
