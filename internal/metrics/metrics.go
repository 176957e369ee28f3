package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collaboration Metrics
var (
	// CollaborationRequestsTotal - созданные заявки по типу (REQUEST/INVITATION)
	CollaborationRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "collaboration_requests_total",
		Help: "Total number of collaboration requests and invitations created",
	}, []string{"type"})

	// CollaborationResponsesTotal - ответы на заявки по итоговому статусу
	CollaborationResponsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "collaboration_responses_total",
		Help: "Total number of collaboration request responses",
	}, []string{"status"})

	// CollaboratorsAddedTotal - добавленные участники
	CollaboratorsAddedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "collaborators_added_total",
		Help: "Total number of collaborators added to projects",
	})
)

// PR Metrics
var (
	// PRCreatedTotal - количество созданных PR
	PRCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pr_created_total",
		Help: "Total number of pull requests created",
	})

	// PRStatusChangedTotal - переходы статусов PR
	PRStatusChangedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pr_status_changed_total",
		Help: "Total number of pull request status transitions",
	}, []string{"status"})

	// PRMergeDuration - время merge PR
	PRMergeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pr_merge_duration_seconds",
		Help:    "Duration of PR merge operation in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// PRMergedFilesTotal - файлы, перенесённые в проект при merge
	PRMergedFilesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pr_merged_files_total",
		Help: "Total number of staged files moved into project files on merge",
	})

	// PRStagedFileBytes - размер файлов, прикреплённых к PR
	PRStagedFileBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pr_staged_file_bytes",
		Help:    "Size of files staged on pull requests",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
	})
)

// Change Request Metrics
var (
	// ChangeRequestsTotal - созданные предложения по типу изменения
	ChangeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "change_requests_total",
		Help: "Total number of change requests created",
	}, []string{"change_type"})

	// ChangeRequestReviewsTotal - рецензии предложений по статусу
	ChangeRequestReviewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "change_request_reviews_total",
		Help: "Total number of change request reviews",
	}, []string{"status"})
)

// HTTP Metrics
var (
	// HTTPRequestsTotal - общее количество HTTP запросов
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration - время обработки запроса
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP request in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	// HTTPRequestSize - размер запроса
	HTTPRequestSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_size_bytes",
		Help:    "Size of HTTP request in bytes",
		Buckets: prometheus.ExponentialBuckets(100, 10, 8),
	}, []string{"method", "path"})

	// HTTPResponseSize - размер ответа
	HTTPResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_response_size_bytes",
		Help:    "Size of HTTP response in bytes",
		Buckets: prometheus.ExponentialBuckets(100, 10, 8),
	}, []string{"method", "path"})
)

// Database Metrics
var (
	// DBTransactionDuration - время выполнения транзакций
	DBTransactionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "db_transaction_duration_seconds",
		Help:    "Duration of database transaction in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// DBTransactionTotal - количество транзакций
	DBTransactionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "db_transaction_total",
		Help: "Total number of database transactions",
	}, []string{"status"})

	// DBConnectionPoolActive - активные соединения
	DBConnectionPoolActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_connection_pool_active",
		Help: "Number of active database connections",
	})

	// DBConnectionPoolIdle - idle соединения
	DBConnectionPoolIdle = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_connection_pool_idle",
		Help: "Number of idle database connections",
	})
)

// Error Metrics
var (
	// ErrorsTotal - количество ошибок
	ErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "errors_total",
		Help: "Total number of errors",
	}, []string{"error_type", "layer"})

	// DomainErrorsTotal - доменные ошибки
	DomainErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domain_errors_total",
		Help: "Total number of domain errors",
	}, []string{"error_code"})
)

// Service Layer Metrics
var (
	// ServiceOperationDuration - время операций сервиса
	ServiceOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "service_operation_duration_seconds",
		Help:    "Duration of service operation in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)
