package sql

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	// SQLite engine for gormlite.
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/jobboard/jobfilter/pkg/config"
	"github.com/jobboard/jobfilter/pkg/query/compiler"
	"github.com/jobboard/jobfilter/pkg/store/sql/model"
)

type Store struct {
	config   *config.Config
	db       *gorm.DB
	compiler *compiler.Compiler
	jobs     *schema.Schema
}

//nolint:ireturn
func openDialector(storeURL string) (gorm.Dialector, error) {
	uri, err := url.Parse(storeURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse store url %q: %w", storeURL, err)
	}

	switch uri.Scheme {
	case "postgres", "postgresql":
		return postgres.Open(storeURL), nil
	case "mysql":
		// The mysql driver takes a DSN rather than an URL.
		query := uri.Query()
		query.Set("parseTime", "true")

		dsn := fmt.Sprintf("%s@tcp(%s)%s?%s", uri.User.String(), uri.Host, uri.Path, query.Encode())

		return mysql.Open(dsn), nil
	case "sqlserver":
		return sqlserver.Open(storeURL), nil
	case "sqlite":
		return gormlite.Open(strings.TrimPrefix(storeURL, "sqlite://")), nil
	case "", "file":
		return gormlite.Open(storeURL), nil
	default:
		return nil, fmt.Errorf("unsupported store url scheme %q", uri.Scheme)
	}
}

// Migrate creates or updates the job tables.
func (s Store) Migrate() error {
	if err := s.db.AutoMigrate(
		&model.Language{},
		&model.Location{},
		&model.Category{},
		&model.Attribute{},
		&model.Job{},
		&model.JobAttributeValue{},
	); err != nil {
		return fmt.Errorf("failed to migrate job schema: %w", err)
	}

	return nil
}

func (s Store) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}

	if err := db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

const slowQueryThreshold = 500 * time.Millisecond

func NewSQLStore(logger *logrus.Logger, config *config.Config) (*Store, error) {
	policy, err := compiler.ParseUnknownAttributePolicy(config.UnknownAttributes)
	if err != nil {
		return nil, err
	}

	dialector, err := openDialector(config.StoreURL)
	if err != nil {
		return nil, err
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: NewLoggerAdaptor(logger, LoggerAdaptorConfig{
			SlowThreshold:             slowQueryThreshold,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %q: %w", config.StoreURL, err)
	}

	statement := &gorm.Statement{DB: database}
	if err := statement.Parse(&model.Job{}); err != nil {
		return nil, fmt.Errorf("failed to parse job schema: %w", err)
	}

	store := &Store{config: config, db: database, jobs: statement.Schema}
	store.compiler = compiler.NewCompiler(logger, compiler.JobFieldTypes(), store, policy)

	if config.MigrateSchema {
		if err := store.Migrate(); err != nil {
			return nil, errors.Join(err, store.Close())
		}
	}

	return store, nil
}
