// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pingbot_commands_total",
	Help: "Chat commands recognized, by intent",
}, []string{"intent"})

var PingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pingbot_pings_total",
	Help: "Moderators mentioned in replies, by selection policy",
}, []string{"policy"})

var DispatchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pingbot_dispatch_failures_total",
	Help: "Failures caught by the dispatch error boundary, by stage",
}, []string{"stage"})

var RosterReloads = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pingbot_roster_reloads_total",
	Help: "Roster reload attempts, by result",
}, []string{"result"})

var RosterSites = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "pingbot_roster_sites",
	Help: "Number of sites in the current roster",
})
