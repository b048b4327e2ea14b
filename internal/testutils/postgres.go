//go:build integration

package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/linskybing/survey-platform/internal/config/db"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SetupPostgres returns a migrated database. TEST_DB_DSN points at an
// existing server; otherwise a postgres:15 container is started.
func SetupPostgres() (*gorm.DB, func()) {
	ctx := context.Background()
	terminate := func() {}

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		req := testcontainers.ContainerRequest{
			Image: "postgres:15",
			Env: map[string]string{
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_USER":     "test",
				"POSTGRES_DB":       "survey",
			},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
		}

		pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if err != nil {
			log.Fatal(err)
		}
		terminate = func() { _ = pg.Terminate(ctx) }

		host, err := pg.Host(ctx)
		if err != nil {
			log.Fatal(err)
		}
		port, err := pg.MappedPort(ctx, "5432")
		if err != nil {
			log.Fatal(err)
		}
		dsn = fmt.Sprintf("postgres://test:test@%s:%s/survey?sslmode=disable", host, port.Port())
	}

	// retry db connect
	var sqlDB *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		sqlDB, err = sql.Open("postgres", dsn)
		if err == nil {
			err = sqlDB.Ping()
			if err == nil {
				break
			}
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		log.Fatal(err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}

	cleanup := func() {
		_ = sqlDB.Close()
		terminate()
	}
	return gormDB, cleanup
}
