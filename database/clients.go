package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"portal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (db *DB) GetClientByAccessKey(ctx context.Context, accessKey string) (*models.Client, error) {
	query := `
		SELECT id, name, access_key, created_at, updated_at
		FROM clients
		WHERE access_key = $1
	`

	client, err := scanClient(db.Pool.QueryRow(ctx, query, accessKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("invalid access key")
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return client, nil
}

func (db *DB) CreateClient(ctx context.Context, name string) (*models.Client, error) {
	accessKey := generateAccessKey()

	query := `
		INSERT INTO clients (name, access_key)
		VALUES ($1, $2)
		RETURNING id, name, access_key, created_at, updated_at
	`

	client, err := scanClient(db.Pool.QueryRow(ctx, query, name, accessKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	log.Printf("Created client: %s (ID: %s)", client.Name, client.ID)
	return client, nil
}

func (db *DB) ListClients(ctx context.Context) ([]models.Client, error) {
	query := `
		SELECT id, name, access_key, created_at, updated_at
		FROM clients
		ORDER BY created_at DESC
	`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	return scanClients(rows)
}

// Helper functions

func generateAccessKey() string {
	return fmt.Sprintf("portal_%s", uuid.New().String())
}

func scanClient(row rowScanner) (*models.Client, error) {
	var client models.Client
	err := row.Scan(
		&client.ID,
		&client.Name,
		&client.AccessKey,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func scanClients(rows rowsScanner) ([]models.Client, error) {
	clients := []models.Client{}
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, *client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clients: %w", err)
	}

	return clients, nil
}
