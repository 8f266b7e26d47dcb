// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config reads the awsctl user configuration, a YAML document at
// $AWSCTL_CFG_FILE or awsctl.yaml in os.UserConfigDir:
//
//	region: eu-west-1
//	cache:
//	  clean: 24
//	lex:
//	  region: us-east-1
//	  attrs: name,status,version
//
// Keys are dotted paths. Getters try the current namespace first, so
// lex.region above wins over region while a lex command runs.
package config
