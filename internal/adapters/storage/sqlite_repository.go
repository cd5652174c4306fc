package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"planpilot/internal/config"
	"planpilot/internal/domain"
	"planpilot/internal/logging"
	"planpilot/internal/ports"
)

// SQLiteRepository implements ports.TaskRepository using GORM
type SQLiteRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// Verify interface compliance at compile time
var _ ports.TaskRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the planpilot logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("PLANPILOT_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// schema is applied on every open. Statements are idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'todo' CHECK (status IN ('todo','done')),
		comment TEXT NOT NULL DEFAULT '',
		last_session_id TEXT NOT NULL DEFAULT '',
		last_cwd TEXT NOT NULL DEFAULT '',
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS steps (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		plan_id INTEGER NOT NULL,
		content TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'todo' CHECK (status IN ('todo','done')),
		executor TEXT NOT NULL DEFAULT 'ai' CHECK (executor IN ('ai','human')),
		sort_order INTEGER NOT NULL,
		comment TEXT NOT NULL DEFAULT '',
		wait_until DATETIME,
		wait_reason TEXT NOT NULL DEFAULT '',
		created_at DATETIME,
		updated_at DATETIME,
		FOREIGN KEY (plan_id) REFERENCES plans(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_steps_plan_sort ON steps(plan_id, sort_order)`,
	`CREATE TABLE IF NOT EXISTS goals (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		step_id INTEGER NOT NULL,
		content TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'todo' CHECK (status IN ('todo','done')),
		comment TEXT NOT NULL DEFAULT '',
		created_at DATETIME,
		updated_at DATETIME,
		FOREIGN KEY (step_id) REFERENCES steps(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_goals_step ON goals(step_id)`,
	`CREATE TABLE IF NOT EXISTS active_plans (
		session_id TEXT PRIMARY KEY,
		plan_id INTEGER NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		FOREIGN KEY (plan_id) REFERENCES plans(id) ON DELETE CASCADE
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_active_plans_plan ON active_plans(plan_id)`,
	`CREATE TABLE IF NOT EXISTS status_changes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		entity_type TEXT NOT NULL,
		entity_id INTEGER NOT NULL,
		from_status TEXT NOT NULL DEFAULT '',
		to_status TEXT NOT NULL DEFAULT '',
		reason TEXT NOT NULL DEFAULT '',
		created_at DATETIME
	)`,
	`CREATE INDEX IF NOT EXISTS idx_status_changes_entity ON status_changes(entity_type, entity_id)`,
}

// columnMigrations lists columns introduced after the first release. Older
// databases get them added in place.
var columnMigrations = []struct {
	model  any
	column string
}{
	{&PlanModel{}, "last_session_id"},
	{&PlanModel{}, "last_cwd"},
	{&PlanModel{}, "comment"},
	{&StepModel{}, "executor"},
	{&StepModel{}, "comment"},
	{&StepModel{}, "wait_until"},
	{&StepModel{}, "wait_reason"},
	{&GoalModel{}, "comment"},
}

// NewSQLiteRepository creates a new SQLiteRepository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = config.ExpandPath(dbPath)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection gets them
	dsn := dbPath + "?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL&_synchronous=NORMAL"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Opened task store", "path", dbPath)
	return &SQLiteRepository{db: db, now: func() time.Time { return time.Now().UTC() }}, nil
}

// NewSQLiteRepositoryForPath creates a new SQLiteRepository under a PLANPILOT_HOME path
func NewSQLiteRepositoryForPath(homePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(homePath, config.DBFileName))
}

func migrate(db *gorm.DB) error {
	migrator := db.Migrator()

	// Add columns to tables created by older versions before the CREATE
	// INDEX statements reference them
	for _, m := range columnMigrations {
		if !migrator.HasTable(m.model) {
			continue
		}
		if !migrator.HasColumn(m.model, m.column) {
			if err := migrator.AddColumn(m.model, m.column); err != nil {
				return fmt.Errorf("failed to migrate %s column: %w", m.column, err)
			}
			logging.Logger.Info("Migrated column", "column", m.column)
		}
	}

	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// write runs fn in a retried transaction and classifies the error
func (r *SQLiteRepository) write(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(fn)
	}, 3)
	return domain.DBError(op, err)
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func missingIDs(want []int64, found map[int64]bool) []int64 {
	var missing []int64
	for _, id := range want {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
