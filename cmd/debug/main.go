package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/aldermoor/villageforge/internal/database"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default/environment variables")
	}

	// Construct connection string
	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	dbPool, err := database.NewPool(connString, 2, 5*time.Minute, 30*time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()

	// Dump village summaries
	fmt.Println("--- Villages ---")
	rows, err := dbPool.Query(ctx, `
		SELECT village_id,
		       state->>'name',
		       state->>'location',
		       state->'population'->>'total',
		       state->>'season',
		       updated_at
		FROM villages
		ORDER BY village_id
	`)
	if err != nil {
		log.Printf("Failed to query villages: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id, name, location, population, season string
			var updatedAt time.Time
			if err := rows.Scan(&id, &name, &location, &population, &season, &updatedAt); err != nil {
				log.Printf("Failed to scan village: %v", err)
				continue
			}
			fmt.Printf("ID: %s, Name: %s, Location: %s, Population: %s, Season: %s, UpdatedAt: %s\n",
				id, name, location, population, season, updatedAt.Format(time.RFC3339))
		}
	}

	// Dump recent history entries
	fmt.Println("\n--- Recent Event History ---")
	rows, err = dbPool.Query(ctx, `
		SELECT village_id,
		       entry->>'title',
		       entry->>'outcome',
		       resolved_at
		FROM village_event_history
		ORDER BY resolved_at DESC
		LIMIT 20
	`)
	if err != nil {
		log.Printf("Failed to query event history: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var villageID, title, outcome string
			var resolvedAt time.Time
			if err := rows.Scan(&villageID, &title, &outcome, &resolvedAt); err != nil {
				log.Printf("Failed to scan history entry: %v", err)
				continue
			}
			fmt.Printf("Village: %s, Title: %s, Outcome: %s, ResolvedAt: %s\n",
				villageID, title, outcome, resolvedAt.Format(time.RFC3339))
		}
	}

	// Dump scheduled event counts
	fmt.Println("\n--- Scheduled Events ---")
	rows, err = dbPool.Query(ctx, `
		SELECT village_id, jsonb_array_length(events), updated_at
		FROM village_scheduled_events
		ORDER BY village_id
	`)
	if err != nil {
		log.Printf("Failed to query scheduled events: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var villageID string
			var count int
			var updatedAt time.Time
			if err := rows.Scan(&villageID, &count, &updatedAt); err != nil {
				log.Printf("Failed to scan scheduled events: %v", err)
				continue
			}
			fmt.Printf("Village: %s, Pending: %d, UpdatedAt: %s\n",
				villageID, count, updatedAt.Format(time.RFC3339))
		}
	}
}
