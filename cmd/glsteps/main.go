// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glsteps runs the incremental OpenGL drawing steps
// and provides tools for working with tagged shader files.
package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
