package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/ems-solar/release-tools/contextutils"
	"github.com/ems-solar/release-tools/internal/commands"
)

func main() {
	ctx := contextutils.WithLogger(context.Background(), "relctl")
	if err := commands.RootCommand(ctx).Execute(); err != nil {
		// Fatalw exits non-zero so the triggering automation is marked failed.
		contextutils.LoggerFrom(ctx).Fatalw("relctl failed", zap.Error(err))
	}
}
