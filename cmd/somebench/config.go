// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"code.hybscloud.com/some/internal/bench"
)

const (
	configFileName = "somebench"
	configFileType = "yaml"
	envPrefix      = "SOMEBENCH"

	cfgKeyN        = "n"
	cfgKeyRounds   = "rounds"
	cfgKeyVariants = "variants"
	cfgKeyParallel = "parallel"
	cfgKeyJSON     = "json"
	cfgKeyLogLevel = "log-level"
)

// loadConfig layers flags over SOMEBENCH_* environment variables over the
// config file over defaults. A missing default config file is not an error;
// a missing explicit one is.
func loadConfig(configFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyN, 1024)
	v.SetDefault(cfgKeyRounds, 100)
	v.SetDefault(cfgKeyParallel, 1)
	v.SetDefault(cfgKeyLogLevel, "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	return v, nil
}

// benchOptions decodes the measurement options from v.
func benchOptions(v *viper.Viper) (bench.Options, error) {
	opts := bench.Options{
		N:        v.GetInt(cfgKeyN),
		Rounds:   v.GetInt(cfgKeyRounds),
		Parallel: v.GetInt(cfgKeyParallel),
	}
	for _, s := range v.GetStringSlice(cfgKeyVariants) {
		for _, name := range strings.Split(s, ",") {
			if name = strings.TrimSpace(name); name == "" {
				continue
			}
			variant, err := bench.ParseVariant(name)
			if err != nil {
				return bench.Options{}, err
			}
			opts.Variants = append(opts.Variants, variant)
		}
	}
	return opts, nil
}

// newLogger returns a text logger on w at the configured level.
func newLogger(w io.Writer, v *viper.Viper) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(cfgKeyLogLevel))); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
