package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline stage names used in logs and metrics. The persist and notify
// stages succeed or fail independently; a notify failure after a persist
// success is the observable inconsistency window.
const (
	StageValidate = "validate"
	StagePersist  = "persist"
	StageNotify   = "notify"
)

var (
	contactStageTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_pipeline_stage_total",
			Help: "Contact form pipeline stage outcomes",
		},
		[]string{"stage", "outcome"},
	)

	videoMetadataTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "video_metadata_lookups_total",
			Help: "Vimeo oEmbed lookup outcomes by resolution source",
		},
		[]string{"source"},
	)
)

func recordStage(stage string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	contactStageTotal.WithLabelValues(stage, outcome).Inc()
}
