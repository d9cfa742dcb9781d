package main

import (
	"context"
	"flag"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/guia-local-api/infrastructure/database/postgres"
	"github.com/vfg2006/guia-local-api/infrastructure/migration"
	"github.com/vfg2006/guia-local-api/internal/config"
	"github.com/vfg2006/guia-local-api/pkg/log"
)

func main() {
	command := flag.String("cmd", "up", "comando do goose: up, down, status, version, redo")
	target := flag.String("to", "", "versão alvo (sobe ou desce até ela)")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	_ = log.Configure(cfg.App.LogLevel)

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if *target != "" {
		err = migration.MigrateToVersion(ctx, conn.DB, *target)
	} else {
		err = migration.Run(ctx, conn.DB, *command, flag.Args()...)
	}
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar migration")
		os.Exit(1)
	}

	logrus.WithField("cmd", *command).Info("Migration executada com sucesso")
}
