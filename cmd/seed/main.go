package main

import (
	"context"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"healthsched/internal/infra/db"
	"healthsched/internal/pkg/config"
	"healthsched/internal/pkg/password"
)

// Seeds development data: verified providers and active patients with a
// shared password so local logins are easy.
const seedPassword = "password123"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer cleanup()

	hash, err := password.HashPassword(seedPassword)
	if err != nil {
		log.Fatalf("hash seed password: %v", err)
	}

	ctx := context.Background()
	if err := seedProviders(ctx, pool, hash, 20); err != nil {
		log.Fatalf("seed providers: %v", err)
	}
	if err := seedPatients(ctx, pool, hash, 200); err != nil {
		log.Fatalf("seed patients: %v", err)
	}

	log.Println("seed complete")
}

func seedProviders(ctx context.Context, pool *pgxpool.Pool, passwordHash string, count int) error {
	log.Printf("seeding %d providers", count)

	specializations := []string{
		"cardiology",
		"dermatology",
		"neurology",
		"pediatrics",
		"orthopedics",
		"radiology",
		"general_medicine",
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i := 0; i < count; i++ {
		spec := specializations[gofakeit.Number(0, len(specializations)-1)]

		_, err := tx.Exec(ctx, `
			INSERT INTO providers (
				id, first_name, last_name, email, phone_number, password_hash,
				specialization, license_number, years_of_experience,
				clinic_street, clinic_city, clinic_state, clinic_zip,
				verification_status, is_active, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			          'verified', TRUE, now(), now())
		`,
			uuid.New(), gofakeit.FirstName(), gofakeit.LastName(),
			gofakeit.Email(), gofakeit.Phone(), passwordHash,
			spec, gofakeit.UUID(), gofakeit.Number(1, 30),
			gofakeit.Street(), gofakeit.City(), gofakeit.StateAbr(), gofakeit.Zip(),
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	log.Println("providers seeded")
	return nil
}

func seedPatients(ctx context.Context, pool *pgxpool.Pool, passwordHash string, count int) error {
	log.Printf("seeding %d patients", count)

	genders := []string{"male", "female", "other", "prefer_not_to_say"}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i := 0; i < count; i++ {
		dob := gofakeit.DateRange(
			time.Now().AddDate(-90, 0, 0),
			time.Now().AddDate(-14, 0, 0),
		)

		_, err := tx.Exec(ctx, `
			INSERT INTO patients (
				id, first_name, last_name, email, phone_number, password_hash,
				date_of_birth, gender, street, city, state, zip,
				medical_history, is_active, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			          '{}', TRUE, now(), now())
		`,
			uuid.New(), gofakeit.FirstName(), gofakeit.LastName(),
			gofakeit.Email(), gofakeit.Phone(), passwordHash,
			dob, genders[gofakeit.Number(0, len(genders)-1)],
			gofakeit.Street(), gofakeit.City(), gofakeit.StateAbr(), gofakeit.Zip(),
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	log.Println("patients seeded")
	return nil
}
