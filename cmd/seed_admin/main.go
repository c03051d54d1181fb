// seed_admin crea el primer usuario administrador. El registro por API es solo para admin,
// así que sin este comando no hay forma de entrar a una base vacía.
//
// Uso: SEED_ADMIN_EMAIL=... SEED_ADMIN_PASSWORD=... go run ./cmd/seed_admin
// Con -force crea el admin aunque ya existan usuarios.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/componentes-api/internal/application/auth"
	"github.com/jhoicas/componentes-api/internal/domain"
	"github.com/jhoicas/componentes-api/internal/domain/entity"
	"github.com/jhoicas/componentes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/componentes-api/pkg/config"
	"github.com/jhoicas/componentes-api/pkg/logger"
)

func main() {
	force := flag.Bool("force", false, "crear el admin aunque la tabla users no esté vacía")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son requeridos")
		os.Exit(1)
	}

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	n, err := userRepo.Count(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("contar usuarios")
	}
	if n > 0 && !*force {
		log.Info().Int64("users", n).Msg("ya existen usuarios, no se crea el admin (usar -force)")
		return
	}

	authUC := auth.NewAuthUseCase(userRepo, nil, auth.Config{
		BcryptCost:   cfg.Auth.BcryptCost,
		QueryTimeout: cfg.DB.QueryTimeout,
	}, log)
	res := authUC.Register(ctx, auth.RegisterInput{
		Name:     cfg.Seed.AdminName,
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
		Role:     string(entity.RoleAdmin),
	})
	switch res {
	case domain.Ok:
		log.Info().Str("email", entity.NormalizeEmail(cfg.Seed.AdminEmail)).Msg("admin creado")
	case domain.ConflictOrConstraintViolation:
		log.Info().Msg("el email del admin ya está registrado")
	default:
		log.Fatal().Str("result", res.String()).Msg("no se pudo crear el admin")
	}
}
