// Copyright © 2025 The Gomon Project.

package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMainCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// a canceled session ends before it samples, displays, or reads input
	assert.NoError(t, Main(ctx))
}
