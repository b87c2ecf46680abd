package service

import (
	"context"
	"fmt"

	"rentcar-bot/internal/domain"
	"rentcar-bot/internal/logger"
	"rentcar-bot/internal/repository"
)

type catalogService struct {
	cars repository.CarRepository
}

func NewCatalogService(cars repository.CarRepository) CatalogService {
	return &catalogService{cars: cars}
}

func (s *catalogService) ListCategories(_ context.Context) []domain.CarCategory {
	return domain.CarCategories()
}

func (s *catalogService) ListAvailable(ctx context.Context, category domain.CarCategory) ([]domain.Car, error) {
	return s.cars.ListAvailableByCategory(ctx, category)
}

func (s *catalogService) GetCar(ctx context.Context, id int64) (*domain.Car, error) {
	return s.cars.GetByID(ctx, id)
}

// EnsureSeeded loads the starter fleet when the cars table is empty. Idempotent
// across restarts; an operator-managed fleet is never touched.
func (s *catalogService) EnsureSeeded(ctx context.Context) error {
	count, err := s.cars.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting cars: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := s.cars.Seed(ctx, starterFleet()); err != nil {
		return fmt.Errorf("seeding cars: %w", err)
	}
	logger.Info("seeded starter fleet", "cars", len(starterFleet()))
	return nil
}

// starterFleet is the initial Santiago fleet. Rates are CLP per day.
func starterFleet() []domain.Car {
	return []domain.Car{
		{Brand: "GAC", Model: "All New GS8", Year: 2024, Category: domain.CarCategoryPremium, DayRateCLP: 149990, Available: true, ImageURL: "public/images/gacfull.png", Description: "SUV grande, 7 asientos (Blanco)"},
		{Brand: "GAC", Model: "All New GS8", Year: 2024, Category: domain.CarCategoryPremium, DayRateCLP: 149990, Available: true, ImageURL: "public/images/gaccomfort.PNG", Description: "SUV grande, 7 asientos (Negro)"},
		{Brand: "Lexus", Model: "RX 450 H", Year: 2024, Category: domain.CarCategoryPremium, DayRateCLP: 135990, Available: true, ImageURL: "public/images/lexusrx.png", Description: "SUV premium híbrido"},
		{Brand: "Chevrolet", Model: "Cavalier", Year: 2024, Category: domain.CarCategoryEconomy, DayRateCLP: 49990, Available: true, ImageURL: "public/images/chevrolett.png", Description: "Sedán compacto"},
		{Brand: "Cherry", Model: "Tiggo 2 Pro Max", Year: 2024, Category: domain.CarCategoryEconomy, DayRateCLP: 49990, Available: true, ImageURL: "public/images/cherry.PNG", Description: "SUV compacto"},
		{Brand: "Honda", Model: "Accord", Year: 2024, Category: domain.CarCategoryEconomy, DayRateCLP: 34990, Available: true, ImageURL: "public/images/honda.png", Description: "Sedán mediano/full-size"},
		{Brand: "Mazda", Model: "6", Year: 2024, Category: domain.CarCategoryEconomy, DayRateCLP: 49990, Available: true, ImageURL: "public/images/mazda6.png", Description: "Sedán mediano"},
		{Brand: "Subaru", Model: "Impreza", Year: 2024, Category: domain.CarCategoryEconomy, DayRateCLP: 49990, Available: true, ImageURL: "public/images/Impreza.jpeg", Description: "Hatchback compacto"},
		{Brand: "Lexus", Model: "ES 350", Year: 2024, Category: domain.CarCategoryEconomy, DayRateCLP: 54990, Available: true, ImageURL: "public/images/lexuses.png", Description: "Sedán premium"},
		{Brand: "Mazda", Model: "CX-9", Year: 2024, Category: domain.CarCategorySUV, DayRateCLP: 119990, Available: true, ImageURL: "public/images/mazda9.png", Description: "7 asientos, SUV grande"},
		{Brand: "Mitsubishi", Model: "Outlander", Year: 2024, Category: domain.CarCategorySUV, DayRateCLP: 71990, Available: true, ImageURL: "public/images/mitsubishi.png", Description: "SUV mediano"},
		{Brand: "Subaru", Model: "Outback", Year: 2024, Category: domain.CarCategorySUV, DayRateCLP: 64990, Available: true, ImageURL: "public/images/subaruoutback.png", Description: "Wagon/Crossover 4x4"},
		{Brand: "Toyota", Model: "RAV4", Year: 2024, Category: domain.CarCategorySUV, DayRateCLP: 71990, Available: true, ImageURL: "public/images/toyota.png", Description: "SUV compacto"},
	}
}
