// Command adminctl provisions admin accounts out-of-band. The API itself
// exposes no account-creation endpoint.
//
//	adminctl -username alice -password 's3cret'
package main

import (
	"context"
	"flag"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/smcs-alumni/alumni-portal/internal/core/domain"
	mongodb "github.com/smcs-alumni/alumni-portal/internal/infrastructure/db/mongo"
	"github.com/smcs-alumni/alumni-portal/internal/pkg/config"
	"github.com/smcs-alumni/alumni-portal/pkg/logger"
)

func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	if *username == "" || *password == "" {
		log.Fatal().Msg("both -username and -password are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing failed")
	}

	repo := mongodb.NewAuthRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	account, err := repo.Create(ctx, &domain.AdminAccount{
		Username:     *username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("account creation failed")
	}

	log.Info().Str("id", account.ID).Str("username", account.Username).Msg("admin account created")
}
