package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// QuotesTotal counts configuration price quotes served.
	QuotesTotal prometheus.Counter
	// CartItemsAddedTotal counts line items added to carts.
	CartItemsAddedTotal prometheus.Counter
	// DiscountAppliedTotal counts discount application outcomes.
	DiscountAppliedTotal *prometheus.CounterVec
	// OrdersCreatedTotal counts orders placed through checkout.
	OrdersCreatedTotal prometheus.Counter
	// CatalogCacheTotal counts catalog cache lookups by outcome.
	CatalogCacheTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		QuotesTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_total",
			Help:      "Total number of configuration price quotes served.",
		})
		CartItemsAddedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_items_added_total",
			Help:      "Total number of line items added to carts.",
		})
		DiscountAppliedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discount_applied_total",
			Help:      "Count of discount application attempts by outcome.",
		}, []string{"result"})
		OrdersCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Total number of orders placed through checkout.",
		})
		CatalogCacheTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_cache_total",
			Help:      "Count of catalog cache lookups by outcome.",
		}, []string{"result"})

		mustRegisterCollector(reg, QuotesTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				QuotesTotal = v
			}
		})
		mustRegisterCollector(reg, CartItemsAddedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				CartItemsAddedTotal = v
			}
		})
		mustRegisterCollector(reg, DiscountAppliedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				DiscountAppliedTotal = v
			}
		})
		mustRegisterCollector(reg, OrdersCreatedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				OrdersCreatedTotal = v
			}
		})
		mustRegisterCollector(reg, CatalogCacheTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				CatalogCacheTotal = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
