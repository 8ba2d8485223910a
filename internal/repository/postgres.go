package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"github.com/priyanshi-bakery/storefront/internal/config"
	"github.com/priyanshi-bakery/storefront/internal/models"
)

// PostgresRepository implements ProductRepository and OrderRepository over a
// shared database handle
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository opens a connection pool against the configured database
func NewPostgresRepository(cfg config.DatabaseConfig) (*PostgresRepository, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return &PostgresRepository{db: db}, nil
}

// RunMigrations applies pending schema migrations from the configured directory
func (r *PostgresRepository) RunMigrations(migrationsPath string) error {
	driver, err := postgres.WithInstance(r.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

// GetAll returns all products ordered by id
func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, description, price, in_stock FROM products ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.InStock); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return products, nil
}

// GetByID returns a product by its ID
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	query := `SELECT id, name, description, price, in_stock FROM products WHERE id = $1`

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.InStock)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query product by id: %w", err)
	}

	return &p, nil
}

// Create inserts a new order with status pending and fills in its assigned id
func (r *PostgresRepository) Create(ctx context.Context, order *models.Order) error {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}

	query := `INSERT INTO orders (customer_name, customer_email, items, status, created_at)
	          VALUES ($1, $2, $3, $4, NOW()) RETURNING id, created_at`

	err = r.db.QueryRowContext(ctx, query,
		order.CustomerName,
		order.CustomerEmail,
		itemsJSON,
		models.OrderStatusPending,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	order.Status = models.OrderStatusPending
	return nil
}

// GetStatus returns the status of the order with the given id
func (r *PostgresRepository) GetStatus(ctx context.Context, id int64) (string, error) {
	query := `SELECT status FROM orders WHERE id = $1`

	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrOrderNotFound
	}
	if err != nil {
		return "", fmt.Errorf("query order status: %w", err)
	}

	return status, nil
}

// SetStatus updates the status of the order with the given id
func (r *PostgresRepository) SetStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE orders SET status = $1 WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// Close releases the underlying connection pool
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}
