// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle of a runnable client application.
type Client interface {
	// Run executes the command line args and returns when it is done.
	Run(ctx context.Context, args []string) error
}
