// Command ecsctl prints the phase/system/resource-access layout of an
// ECS app's scheduler as a markdown table, for debugging phase collisions
// and access-table conflicts before running a real application (§C.3).
package main

import (
	"fmt"
	"os"

	"github.com/kestrel-runtime/ecs"
	"github.com/kestrel-runtime/ecs/internal/diag"
	ecstime "github.com/kestrel-runtime/ecs/plugins/time"
)

func main() {
	app := ecs.NewApp()
	defer app.Scheduler().Close()

	if err := app.AddPlugin(ecstime.Plugin{}); err != nil {
		fmt.Fprintf(os.Stderr, "ecsctl: %v\n", err)
		os.Exit(1)
	}

	formatter := diag.NewFormatter(os.Stdout)
	if err := formatter.PrintScheduler(app.Scheduler()); err != nil {
		fmt.Fprintf(os.Stderr, "ecsctl: %v\n", err)
		os.Exit(1)
	}
}
