package app

import (
	"go.uber.org/zap"

	"receiptomatic/internal/domain"
	"receiptomatic/internal/receipt"
	"receiptomatic/internal/workflow"
)

// App bundles the wired collaborators for the CLI commands.
type App struct {
	Rates      domain.RateConfig
	Composer   *receipt.Composer
	Dispatcher domain.Dispatcher
	Operator   domain.Operator
	Log        *zap.Logger
}

// Workflow returns an interactive session over the app's collaborators.
func (a *App) Workflow() *workflow.Workflow {
	return workflow.New(a.Operator, a.Composer, a.Dispatcher, a.Log)
}
