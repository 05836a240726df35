package db

import (
	"fmt"
	"log"
	"os"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/peliflex/orcamentos/internal/config"
	"github.com/peliflex/orcamentos/internal/models"
)

// ConnectAndMigrate opens the database selected by dsn (postgres URL or
// key=value list, otherwise a sqlite path) and brings the schema up to
// date. MIGRATIONS=1 runs the SQL migrations via golang-migrate (postgres
// only); the default is AutoMigrate, which covers sqlite and development.
func ConnectAndMigrate(rawDSN string) (*gorm.DB, error) {
	dsn := NormalizeDSN(rawDSN)

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var conn *gorm.DB
	var err error
	if IsPostgres(dsn) {
		for i := 0; i < 10; i++ {
			conn, err = gorm.Open(postgres.Open(dsn), cfg)
			if err == nil {
				break
			}
			log.Println("Retrying DB connection...", err)
			time.Sleep(2 * time.Second)
		}
	} else {
		conn, err = gorm.Open(sqlite.Open(dsn), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	if pingErr := conn.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}

	if config.ParseBool("MIGRATIONS", false) && IsPostgres(dsn) {
		if err := runSQLMigrations(dsn); err != nil {
			return nil, fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		toMigrate := []interface{}{
			&models.Cliente{}, &models.Filme{}, &models.Opcao{}, &models.Medida{},
			&models.Empresa{}, &models.Documento{},
		}
		for _, m := range toMigrate {
			if migErr := conn.AutoMigrate(m); migErr != nil {
				return nil, fmt.Errorf("automigrate %T: %w", m, migErr)
			}
		}
	}

	if config.ParseBool("DB_SEED", false) {
		seed(conn)
	}
	return conn, nil
}

// runSQLMigrations executes migrations in ./migrations using the
// golang-migrate file source.
func runSQLMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// seed inserts a small starter catalog so a fresh install can price
// measurements right away.
func seed(conn *gorm.DB) {
	filmes := []models.Filme{
		{Nome: "Película G5", Preco: 90, GarantiaFabricante: 5, GarantiaMaoDeObra: 90, UV: 99, VTL: 5},
		{Nome: "Película G20", Preco: 80, GarantiaFabricante: 5, GarantiaMaoDeObra: 90, UV: 99, VTL: 20},
		{Nome: "Película Espelhada Prata", Preco: 110, GarantiaFabricante: 7, GarantiaMaoDeObra: 90, IR: 85, TSER: 78},
	}
	for _, f := range filmes {
		var existing models.Filme
		if err := conn.Where("nome = ?", f.Nome).First(&existing).Error; err == gorm.ErrRecordNotFound {
			conn.Create(&f)
		}
	}
}
