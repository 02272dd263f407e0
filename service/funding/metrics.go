package funding

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var campaignsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "crowdfund_campaigns_created_total",
	Help: "Total number of campaigns created",
})

var contributionsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "crowdfund_contributions_total",
	Help: "Total number of accepted contributions",
})

var settlementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "crowdfund_settlements_total",
	Help: "Total number of settled campaigns, partitioned by outcome",
}, []string{"outcome"})

const (
	outcomeReleased = "released"
	outcomeRefunded = "refunded"
)
