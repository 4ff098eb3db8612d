// Package main implements a small utility that populates the database
// with a handful of sample customers for local development.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/phrazzld/customer-api/internal/config"
	"github.com/phrazzld/customer-api/internal/domain"
	"github.com/phrazzld/customer-api/internal/platform/logger"
	"github.com/phrazzld/customer-api/internal/platform/postgres"
	"github.com/phrazzld/customer-api/internal/store"
)

func main() {
	reset := flag.Bool("reset", false, "truncate the customers table before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(logger.Config{Level: cfg.Server.LogLevel})

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	if *reset {
		if _, err := db.ExecContext(ctx, "TRUNCATE TABLE customers"); err != nil {
			log.Fatalf("Failed to truncate customers table: %v", err)
		}
		appLogger.Info("Customers table truncated")
	}

	customers := postgres.NewPostgresCustomerStore(db, appLogger)

	created, skipped := 0, 0
	for _, input := range sampleCustomers() {
		_, err := customers.Create(ctx, input)
		switch {
		case err == nil:
			created++
		case errors.Is(err, store.ErrDuplicate):
			// Seeding is idempotent: rerunning skips existing emails.
			skipped++
		default:
			log.Fatalf("Failed to seed customer %s: %v", input.Email, err)
		}
	}

	appLogger.Info("Seeding completed", "created", created, "skipped", skipped)
}

func sampleCustomers() []domain.CreateCustomerInput {
	return []domain.CreateCustomerInput{
		{
			FirstName:   "John",
			LastName:    "Doe",
			Email:       "john.doe@example.com",
			PhoneNumber: ptr("+1 (555) 123-4567"),
			Address:     ptr("123 Main Street"),
			City:        ptr("New York"),
			State:       ptr("NY"),
			Country:     ptr("USA"),
		},
		{
			FirstName:   "Jane",
			LastName:    "Smith",
			Email:       "jane.smith@example.com",
			PhoneNumber: ptr("+1 (555) 987-6543"),
			Address:     ptr("456 Oak Avenue"),
			City:        ptr("Los Angeles"),
			State:       ptr("CA"),
			Country:     ptr("USA"),
		},
		{
			FirstName:   "Carlos",
			LastName:    "Garcia",
			Email:       "carlos.garcia@example.com",
			PhoneNumber: ptr("+34 612 345 678"),
			City:        ptr("Madrid"),
			Country:     ptr("Spain"),
		},
		{
			FirstName: "Aisha",
			LastName:  "Khan",
			Email:     "aisha.khan@example.com",
			City:      ptr("London"),
			Country:   ptr("UK"),
		},
		{
			FirstName:   "Marie",
			LastName:    "Dubois",
			Email:       "marie.dubois@example.com",
			PhoneNumber: ptr("+33 6 12 34 56 78"),
			Address:     ptr("12 Rue de Rivoli"),
			City:        ptr("Paris"),
			Country:     ptr("France"),
		},
	}
}

func ptr(s string) *string { return &s }
