// Package main is the entry point for the workload dashboard.
package main

import (
	// Embed the zone database so DASHBOARD_TIMEZONE resolves on hosts without tzdata
	_ "time/tzdata"

	"github.com/j-veylop/workload-dashboard-tui/internal/cli"
)

func main() {
	cli.Execute()
}
