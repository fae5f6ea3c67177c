package main

import (
	"errors"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/tu-usuario/comandas-api/pkg/config"
	"github.com/tu-usuario/comandas-api/pkg/logger"
)

const migrationsPath = "file://migrations"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if len(os.Args) < 2 {
		log.Fatal().Msg("uso: migrator up|down")
	}

	mig, err := migrate.New(migrationsPath, cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar migraciones")
	}

	switch os.Args[1] {
	case "up":
		err = mig.Up()
	case "down":
		err = mig.Down()
	default:
		log.Fatal().Str("cmd", os.Args[1]).Msg("comando desconocido")
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal().Err(err).Msg("migración falló")
	}
	log.Info().Str("cmd", os.Args[1]).Msg("migración aplicada")
}
