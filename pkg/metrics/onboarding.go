package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OnboardingMetrics records wizard submissions and document uploads.
type OnboardingMetrics struct {
	submitDuration *prometheus.HistogramVec
	submitSuccess  *prometheus.CounterVec
	submitFailure  *prometheus.CounterVec
	stepAdvances   *prometheus.CounterVec
	uploadBytes    *prometheus.CounterVec
	uploadFailure  *prometheus.CounterVec
}

// NewOnboardingMetrics registers the onboarding metrics on the provided registerer.
func NewOnboardingMetrics(reg prometheus.Registerer) *OnboardingMetrics {
	if reg == nil {
		return &OnboardingMetrics{}
	}
	submitDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "onboarding_submit_duration_seconds",
		Help:    "Duration of onboarding submissions in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"account_type"})
	submitSuccess := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "onboarding_submit_success",
		Help: "Successful onboarding submissions.",
	}, []string{"account_type"})
	submitFailure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "onboarding_submit_failure",
		Help: "Failed onboarding submissions.",
	}, []string{"account_type"})
	stepAdvances := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "onboarding_step_advances",
		Help: "Wizard step transitions that passed validation.",
	}, []string{"step"})
	uploadBytes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "onboarding_upload_bytes",
		Help: "Bytes uploaded during onboarding, by document kind.",
	}, []string{"kind"})
	uploadFailure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "onboarding_upload_failure",
		Help: "Failed document uploads during onboarding.",
	}, []string{"kind"})
	reg.MustRegister(submitDuration, submitSuccess, submitFailure, stepAdvances, uploadBytes, uploadFailure)
	return &OnboardingMetrics{
		submitDuration: submitDuration,
		submitSuccess:  submitSuccess,
		submitFailure:  submitFailure,
		stepAdvances:   stepAdvances,
		uploadBytes:    uploadBytes,
		uploadFailure:  uploadFailure,
	}
}

// ObserveSubmit records the duration for a submission of the given account type.
func (o *OnboardingMetrics) ObserveSubmit(accountType string, duration time.Duration) {
	if o == nil || o.submitDuration == nil {
		return
	}
	o.submitDuration.WithLabelValues(normalizeLabel(accountType)).Observe(duration.Seconds())
}

// IncSubmitSuccess increments the success counter for the account type.
func (o *OnboardingMetrics) IncSubmitSuccess(accountType string) {
	if o == nil || o.submitSuccess == nil {
		return
	}
	o.submitSuccess.WithLabelValues(normalizeLabel(accountType)).Inc()
}

// IncSubmitFailure increments the failure counter for the account type.
func (o *OnboardingMetrics) IncSubmitFailure(accountType string) {
	if o == nil || o.submitFailure == nil {
		return
	}
	o.submitFailure.WithLabelValues(normalizeLabel(accountType)).Inc()
}

// IncStepAdvance increments the counter for a validated step transition.
func (o *OnboardingMetrics) IncStepAdvance(step string) {
	if o == nil || o.stepAdvances == nil {
		return
	}
	o.stepAdvances.WithLabelValues(normalizeLabel(step)).Inc()
}

// AddUploadBytes records bytes uploaded for the document kind.
func (o *OnboardingMetrics) AddUploadBytes(kind string, n int64) {
	if o == nil || o.uploadBytes == nil {
		return
	}
	o.uploadBytes.WithLabelValues(normalizeLabel(kind)).Add(float64(n))
}

// IncUploadFailure increments the failed-upload counter for the document kind.
func (o *OnboardingMetrics) IncUploadFailure(kind string) {
	if o == nil || o.uploadFailure == nil {
		return
	}
	o.uploadFailure.WithLabelValues(normalizeLabel(kind)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
