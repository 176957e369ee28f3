package gorm

import (
	"context"
	"sharexconnect/internal/config"
	"sharexconnect/internal/metrics"
	"sharexconnect/internal/storage"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// txManager реализует storage.TxManager для GORM
type txManager struct {
	db        *gorm.DB
	stopCh    chan struct{}
	closeOnce sync.Once
}

// NewTxManager подключается к БД и создаёт менеджер транзакций.
// Пул соединений и сборщик метрик живут до вызова Close.
func NewTxManager(envConf *config.Config) (storage.TxManager, error) {
	db, err := ConnectDB(envConf)
	if err != nil {
		return nil, err
	}
	return NewTxManagerWithDB(db)
}

// NewTxManagerWithDB создаёт менеджер транзакций поверх уже открытого соединения
func NewTxManagerWithDB(db *gorm.DB) (storage.TxManager, error) {
	// Получаем *sql.DB для мониторинга connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	stopCh := make(chan struct{})
	go metrics.StartDBStatsCollector(sqlDB, 5*time.Second, stopCh)

	return &txManager{db: db, stopCh: stopCh}, nil
}

// Do выполняет функцию внутри транзации с автоматическим commit/rollback
func (tm *txManager) Do(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error {
	start := time.Now()

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txWrapper := &transaction{
			db: tx,
		}

		err := fn(ctx, txWrapper)
		if err != nil {
			// GORM автоматически сделает ROLLBACK
			metrics.DBTransactionTotal.WithLabelValues("error").Inc()
			return err
		}

		// GORM автоматически сделает COMMIT
		metrics.DBTransactionTotal.WithLabelValues("success").Inc()
		return nil
	})

	metrics.DBTransactionDuration.Observe(time.Since(start).Seconds())

	return err
}

// Close останавливает сборщик метрик и закрывает пул соединений
func (tm *txManager) Close() error {
	var err error
	tm.closeOnce.Do(func() {
		close(tm.stopCh)

		sqlDB, dbErr := tm.db.DB()
		if dbErr != nil {
			err = dbErr
			return
		}
		err = sqlDB.Close()
		log.Info().Msg("database connection pool closed")
	})
	return err
}

// transaction - обёртка над gorm.DB, реализует storage.Tx
type transaction struct {
	db *gorm.DB
}

func (t *transaction) UserRepo() storage.UserRepository {
	return NewUserRepository(t.db)
}

func (t *transaction) ProjectRepo() storage.ProjectRepository {
	return NewProjectRepository(t.db)
}

func (t *transaction) CollaboratorRepo() storage.CollaboratorRepository {
	return NewCollaboratorRepository(t.db)
}

func (t *transaction) CollaborationRequestRepo() storage.CollaborationRequestRepository {
	return NewCollaborationRequestRepository(t.db)
}

func (t *transaction) RepositoryItemRepo() storage.RepositoryItemRepository {
	return NewRepositoryItemRepository(t.db)
}

func (t *transaction) ChangeRequestRepo() storage.ChangeRequestRepository {
	return NewChangeRequestRepository(t.db)
}

func (t *transaction) PullRequestRepo() storage.PullRequestRepository {
	return NewPullRequestRepository(t.db)
}

func (t *transaction) ProjectFileRepo() storage.ProjectFileRepository {
	return NewProjectFileRepository(t.db)
}
