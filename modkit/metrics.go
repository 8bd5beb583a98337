package modkit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var modActionCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "lodestar_mod_actions",
	Help: "Number of moderation actions issued",
}, []string{"action"})

var modActionErrorCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "lodestar_mod_action_errors",
	Help: "Number of moderation actions which failed",
}, []string{"action"})

var reportAutoResolveCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "lodestar_report_auto_resolves",
	Help: "Number of reports resolved as a side effect of another action",
}, []string{"kind"})

var menuBuildCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "lodestar_menu_builds",
	Help: "Number of action menus computed",
}, []string{"target"})
