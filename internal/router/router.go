package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	"digital-zoo/internal/adapters/storage/memory"
	pg "digital-zoo/internal/adapters/storage/postgres"
	_ "digital-zoo/internal/docs"
	"digital-zoo/internal/domain/zoo"
	"digital-zoo/internal/middleware"
	"digital-zoo/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => sin logs

	// Opcional: si viene DB, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: repo explícito (ver NewRepository). Tiene prioridad sobre DB.
	Repo zoo.Repository
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	repo := opts.Repo
	if repo == nil {
		if opts.DB != nil {
			repo = pg.NewAnimalsRepo(opts.DB)
		} else {
			repo = memory.NewAnimalRepo()
		}
	}

	svc := zoo.NewService(repo, log)
	zoo.RegisterRoutes(r, svc)

	return r
}

// NewRepository abre el store configurado: Postgres si hay DSN, in-memory si
// está vacío. Un DSN que no conecta es un error; nunca cae a in-memory.
func NewRepository(ctx context.Context, dsn string) (zoo.Repository, error) {
	if strings.TrimSpace(dsn) == "" {
		return memory.NewAnimalRepo(), nil
	}

	db, err := pg.Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := pg.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return pg.NewAnimalsRepo(db), nil
}
