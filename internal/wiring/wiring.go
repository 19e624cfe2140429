// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/mjeanroy/licnotice/internal/adapters/logger"
	_ "github.com/mjeanroy/licnotice/internal/adapters/records"
	// Register report and app nodes.
	_ "github.com/mjeanroy/licnotice/internal/app"
	_ "github.com/mjeanroy/licnotice/internal/report"
)
