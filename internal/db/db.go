package db

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Connect initializes the database connection and runs migrations.
func Connect(dsn string) (*sqlx.DB, error) {
	database, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	if err := runMigrations(database); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return database, nil
}

func runMigrations(database *sqlx.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            username VARCHAR(80) UNIQUE NOT NULL,
            email VARCHAR(120) UNIQUE NOT NULL,
            password_hash VARCHAR(120) NOT NULL,
            user_type VARCHAR(20) NOT NULL,
            favorite_team VARCHAR(50),
            latitude DOUBLE PRECISION,
            longitude DOUBLE PRECISION,
            establishment_name VARCHAR(100),
            created_at TIMESTAMPTZ DEFAULT NOW()
        );`,
		`CREATE TABLE IF NOT EXISTS chat_messages (
            id SERIAL PRIMARY KEY,
            user_id INT NOT NULL REFERENCES users(id),
            room_id VARCHAR(100) NOT NULL,
            message TEXT NOT NULL,
            message_type VARCHAR(20) DEFAULT 'text',
            created_at TIMESTAMPTZ DEFAULT NOW()
        );`,
		`CREATE INDEX IF NOT EXISTS idx_chat_messages_room_created
            ON chat_messages (room_id, created_at DESC);`,
		`CREATE TABLE IF NOT EXISTS matches (
            id SERIAL PRIMARY KEY,
            api_match_id INT UNIQUE,
            home_team VARCHAR(50) NOT NULL,
            away_team VARCHAR(50) NOT NULL,
            match_date TIMESTAMPTZ NOT NULL,
            status VARCHAR(20) DEFAULT 'scheduled',
            home_score INT DEFAULT 0,
            away_score INT DEFAULT 0,
            round_number INT
        );`,
		`CREATE TABLE IF NOT EXISTS user_match_interests (
            id SERIAL PRIMARY KEY,
            user_id INT NOT NULL REFERENCES users(id),
            match_id INT NOT NULL REFERENCES matches(id),
            supporting_team VARCHAR(50) NOT NULL,
            ranking INT DEFAULT 1,
            establishment_id INT REFERENCES users(id)
        );`,
	}

	for _, m := range migrations {
		if _, err := database.Exec(m); err != nil {
			return err
		}
	}
	log.Println("database migrations applied")
	return nil
}
