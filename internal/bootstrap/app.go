package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"cloud.google.com/go/datastore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/locvowork/employee_service/internal/assembler"
	"github.com/locvowork/employee_service/internal/client"
	"github.com/locvowork/employee_service/internal/config"
	"github.com/locvowork/employee_service/internal/database"
	"github.com/locvowork/employee_service/internal/domain"
	"github.com/locvowork/employee_service/internal/export"
	"github.com/locvowork/employee_service/internal/handler"
	"github.com/locvowork/employee_service/internal/logger"
	"github.com/locvowork/employee_service/internal/repository"
	"github.com/locvowork/employee_service/internal/service"
)

type App struct {
	Echo            *echo.Echo
	DB              *sql.DB
	DataStoreClient *datastore.Client
	Search          *database.ElasticSearchClient
	// Repository is the storage backend, already wrapped with index
	// mirroring when search is enabled.
	Repository domain.EmployeeRepository
}

func NewApp() *App {
	return &App{
		Echo: echo.New(),
	}
}

// Initialize loads configuration and wires storage, search and the HTTP layer.
func (a *App) Initialize(ctx context.Context) error {
	if err := a.InitializeStorage(ctx); err != nil {
		return err
	}

	cfg := config.DefaultEnvConfig
	departments := client.NewDepartmentClient(cfg.DEPARTMENT_SERVICE_URL, cfg.DEPARTMENT_CLIENT_TIMEOUT)

	var opts []service.Option
	if a.Search != nil {
		opts = append(opts, service.WithSearcher(a.Search))
	}
	empSvc := service.NewEmployeeService(a.Repository, departments, assembler.NewLinkAssembler(cfg.PUBLIC_BASE_URL), opts...)

	layout, err := export.LoadLayout(cfg.EXPORT_LAYOUT_PATH)
	if err != nil {
		return fmt.Errorf("failed to load export layout: %w", err)
	}
	empHandler := handler.NewEmployeeHandler(empSvc, export.NewExporter(layout))

	a.RegisterMiddlewares()
	handler.RegisterRoutes(a.Echo, empHandler, cfg.JWT_SECRET)
	if cfg.JWT_SECRET == "" {
		logger.WarnLog(ctx, "JWT_SECRET is empty, mutating routes are unauthenticated")
	}

	return nil
}

// InitializeStorage loads configuration, sets up logging and opens the
// configured repository backend and search index.
func (a *App) InitializeStorage(ctx context.Context) error {
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}
	cfg := config.DefaultEnvConfig

	logger.InitLogging(cfg.LOG_FILE_PATH, cfg.LOG_LEVEL)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	repo, err := a.openRepository(ctx)
	if err != nil {
		return err
	}

	if cfg.ELASTIC_URL != "" {
		es, err := database.NewElasticSearchClient(cfg.ELASTIC_URL, cfg.ELASTIC_INDEX)
		if err != nil {
			return fmt.Errorf("failed to initialize search: %w", err)
		}
		a.Search = es
		repo = repository.NewIndexedEmployeeRepository(repo, es)
		logger.InfoLog(ctx, "Search index %s enabled", cfg.ELASTIC_INDEX)
	}

	a.Repository = repo
	return nil
}

func (a *App) openRepository(ctx context.Context) (domain.EmployeeRepository, error) {
	cfg := config.DefaultEnvConfig

	switch cfg.REPOSITORY_BACKEND {
	case config.BackendSQL:
		dialect := database.Dialect(cfg.DB_DRIVER)
		var (
			db  *sql.DB
			err error
		)
		switch dialect {
		case database.DialectPostgres:
			db, err = database.NewPostgresDB(ctx, database.Config{
				Host:            cfg.DB_HOST,
				Port:            cfg.DB_PORT,
				User:            cfg.DB_USER,
				Password:        cfg.DB_PASSWORD,
				DBName:          cfg.DB_NAME,
				SSLMode:         cfg.DB_SSL_MODE,
				MaxOpenConns:    cfg.DB_MAX_OPEN_CONNS,
				MaxIdleConns:    cfg.DB_MAX_IDLE_CONNS,
				ConnMaxLifetime: cfg.DB_CONN_MAX_LIFETIME,
			})
		case database.DialectSQLite:
			db, err = database.NewSQLiteDB(ctx, cfg.SQLITE_PATH)
		default:
			return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB_DRIVER)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.DB = db

		if err := database.Migrate(ctx, db, dialect); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		logger.InfoLog(ctx, "Database connection established (%s)", dialect)
		return repository.NewEmployeeRepository(db, dialect.Placeholder()), nil

	case config.BackendDatastore:
		ds, err := database.NewDatastoreClient(ctx, cfg.DATASTORE_PROJECT_ID)
		if err != nil {
			return nil, err
		}
		a.DataStoreClient = ds
		logger.InfoLog(ctx, "Datastore client ready for project %s", cfg.DATASTORE_PROJECT_ID)
		return repository.NewDatastoreEmployeeRepository(ds), nil

	case config.BackendMemory:
		logger.WarnLog(ctx, "Using in-memory repository, data is lost on restart")
		return repository.NewMemoryEmployeeRepository(), nil

	default:
		return nil, fmt.Errorf("unsupported REPOSITORY_BACKEND %q", cfg.REPOSITORY_BACKEND)
	}
}

func (a *App) RegisterMiddlewares() {
	a.Echo.HideBanner = true
	a.Echo.HTTPErrorHandler = handler.ErrorHandler
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
	a.Echo.Use(handler.RequestID())
	a.Echo.Use(handler.RequestLogger())
}

// Run serves HTTP until Shutdown is called.
func (a *App) Run() error {
	err := a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the HTTP server and releases storage connections.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	a.Close()
	return err
}

// Close releases storage and search connections.
func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
	if a.DataStoreClient != nil {
		a.DataStoreClient.Close()
	}
	if a.Search != nil {
		a.Search.Close()
	}
}
