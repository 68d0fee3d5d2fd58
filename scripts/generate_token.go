package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/kingrain94/rent-dashboard/internal/config"
	"github.com/kingrain94/rent-dashboard/internal/repository/composite"
	"github.com/kingrain94/rent-dashboard/internal/service"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

// Issues a registered session token for an existing owner, for use with the
// API and the dashboard stream client.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	userID := flag.String("user", "", "Owner (profile) ID for the token")
	expirationHours := flag.Int("exp", 0, "Token expiration in hours (default SESSION_EXPIRATION_HOURS)")
	flag.Parse()

	if *userID == "" {
		log.Fatal("User ID is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *expirationHours > 0 {
		cfg.SessionExpirationHours = *expirationHours
	}

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbConnections.Close()

	redisClient, err := config.DefaultRedisConfig().GetClient()
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	repo := composite.NewCompositeRepository(dbConnections, redisClient, nil, config.DefaultOpenSearchConfig())
	sessions := service.NewSessionService(repo, cfg, logger.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	profile, err := sessions.Profile(ctx, *userID)
	if err != nil {
		log.Fatalf("Unknown owner %s: %v", *userID, err)
	}

	session, err := sessions.StartSession(ctx, profile.ID)
	if err != nil {
		log.Fatalf("Error starting session: %v", err)
	}

	fmt.Fprintf(os.Stderr, "Session for %s expires at %s\n", profile.Email, session.ExpiresAt.Format(time.RFC3339))
	fmt.Println(session.Token)
}
