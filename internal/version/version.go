// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other awsctl packages; core and every command use this.

package version

import (
	"runtime"
	"runtime/debug"
)

// Version is the module version stamped by the Go toolchain, or "dev".
var Version = func() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}()

// UserAgent is the product token sent with every request.
func UserAgent() string {
	return "awsctl/" + Version + " (" + runtime.GOOS + "/" + runtime.GOARCH + ")"
}
