// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	// Command line option keys
	ConfigFileKey = "config"
	LogLevelKey   = "log-level"

	// Environment variable keys
	ConfigFileEnvKey = "CLBRIDGE_CONFIG"

	defaultLogLevel = "info"
)
