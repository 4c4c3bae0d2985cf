// Command seed inserts a sample barbershop with two barbers. Running it
// twice leaves the data unchanged.
package main

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-api/internal/config"
	dbpkg "github.com/BruksfildServices01/barbershop-api/internal/db"
	"github.com/BruksfildServices01/barbershop-api/internal/domain"
	infraRepo "github.com/BruksfildServices01/barbershop-api/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-api/internal/logger"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Fatal("database unavailable", zap.Error(err))
	}

	ctx := context.Background()
	shops := infraRepo.NewBarbershopGormRepository(db)
	barbers := infraRepo.NewBarberGormRepository(db)

	shop, err := shops.FindBySlug(ctx, "barbearia-do-damaso")
	if errors.Is(err, domain.ErrNotFound) {
		shop = &models.Barbershop{
			Name:    "Barbearia do Damaso",
			Email:   "damaso@example.com",
			Slug:    "barbearia-do-damaso",
			Address: "123 Main St, Cityville",
			Phone:   "+55 11 91234-5678",
		}
		err = shops.Create(ctx, shop)
	}
	if err != nil {
		log.Fatal("seed barbershop", zap.Error(err))
	}

	for _, b := range []models.Barber{
		{Name: "Damaso Magno", Email: "damaso@example.com", Phone: "+55 11 99876-5432"},
		{Name: "João Silva", Email: "joao.silva@example.com", Phone: "+55 11 98765-4321"},
	} {
		if _, err := barbers.FindByEmail(ctx, b.Email); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			log.Fatal("seed barber", zap.String("email", b.Email), zap.Error(err))
		}

		b.BarbershopID = shop.ID
		if err := barbers.Create(ctx, &b); err != nil {
			log.Fatal("seed barber", zap.String("email", b.Email), zap.Error(err))
		}
	}

	log.Info("seed complete", zap.Uint("barbershopId", shop.ID))
}
