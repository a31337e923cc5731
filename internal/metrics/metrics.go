package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Loot box metrics
var (
	BoxesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBoxesGenerated,
			Help: HelpTextBoxesGenerated,
		},
		[]string{LabelRarity},
	)

	BoxesOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBoxesOpened,
			Help: HelpTextBoxesOpened,
		},
		[]string{LabelRarity},
	)

	BoxesExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBoxesExpired,
			Help: HelpTextBoxesExpired,
		},
	)

	PoolSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePoolSize,
			Help: HelpTextPoolSize,
		},
	)
)

// Item metrics
var (
	ItemsAcquired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsAcquired,
			Help: HelpTextItemsAcquired,
		},
		[]string{LabelRarity},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelRarity},
	)

	ItemsEquipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsEquipped,
			Help: HelpTextItemsEquipped,
		},
	)
)

// Progression metrics
var (
	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	XPAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameXPAwarded,
			Help: HelpTextXPAwarded,
		},
	)
)

// Frame metrics
var (
	FramesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFramesTotal,
			Help: HelpTextFramesTotal,
		},
	)

	SystemErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSystemErrors,
			Help: HelpTextSystemErrors,
		},
		[]string{LabelSystem},
	)
)
