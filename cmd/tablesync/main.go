package main

import (
	"context"
	"log/slog"
	"os"

	"tablesync/cmd/tablesync/commands"
	"tablesync/lib/telemetry"
)

func main() {
	telemetry.InitSlog(true)

	ctx := context.Background()
	tel, err := telemetry.SetupFromEnv(ctx, "tablesync")
	if err != nil && !os.IsNotExist(err) {
		slog.Warn("telemetry setup failed, continuing without it", "err", err)
	}

	commands.ExecuteContext(ctx)
	tel.Shutdown(ctx)
}
