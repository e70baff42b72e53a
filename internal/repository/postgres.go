package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"concierge/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresRepository handles database operations
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute) // Shorter lifetime to avoid stale connections
	db.SetConnMaxIdleTime(2 * time.Minute) // Close idle connections sooner

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// ActiveListings returns up to limit active listings, newest first. This is
// the bounded snapshot the assistant grounds on; older listings fall outside
// the page and are simply not visible to it.
func (r *PostgresRepository) ActiveListings(ctx context.Context, limit int) ([]model.Listing, error) {
	query := `
		SELECT id, title, type, price, location, description, status,
			owner_id, image_url, created_at, updated_at
		FROM properties
		WHERE status = 'active'
		ORDER BY created_at DESC
		LIMIT $1
	`
	var listings []model.Listing
	if err := r.db.SelectContext(ctx, &listings, query, limit); err != nil {
		return nil, fmt.Errorf("failed to fetch active listings: %w", err)
	}
	return listings, nil
}

// GetListingByID retrieves a single active listing by its ID
func (r *PostgresRepository) GetListingByID(ctx context.Context, id int64) (*model.Listing, error) {
	var listing model.Listing
	query := `
		SELECT id, title, type, price, location, description, status,
			owner_id, image_url, created_at, updated_at
		FROM properties
		WHERE id = $1 AND status = 'active'
	`
	err := r.db.GetContext(ctx, &listing, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &listing, nil
}

// ListListings performs a filtered, paginated read for the portal
func (r *PostgresRepository) ListListings(ctx context.Context, filters *model.ListingFilters, limit, offset int) ([]model.Listing, int, error) {
	whereClauses := []string{"status = 'active'"}
	args := []interface{}{}
	argIndex := 1

	if filters != nil {
		if filters.Type != nil {
			whereClauses = append(whereClauses, fmt.Sprintf("type ILIKE $%d", argIndex))
			args = append(args, "%"+*filters.Type+"%")
			argIndex++
		}
		if filters.Location != nil {
			whereClauses = append(whereClauses, fmt.Sprintf("location ILIKE $%d", argIndex))
			args = append(args, "%"+*filters.Location+"%")
			argIndex++
		}
	}

	whereClause := strings.Join(whereClauses, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM properties WHERE %s", whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count listings: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT id, title, type, price, location, description, status,
			owner_id, image_url, created_at, updated_at
		FROM properties
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIndex, argIndex+1)
	args = append(args, limit, offset)

	var listings []model.Listing
	if err := r.db.SelectContext(ctx, &listings, selectQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to fetch listings: %w", err)
	}

	return listings, total, nil
}

// CreateInquiry stores a contact-form submission
func (r *PostgresRepository) CreateInquiry(ctx context.Context, req *model.InquiryRequest) error {
	query := `
		INSERT INTO inquiries (name, email, phone, message, listing_id)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, req.Name, req.Email, req.Phone, req.Message, req.ListingID)
	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}
	return nil
}

// LogConversation logs one completed assistant exchange
func (r *PostgresRepository) LogConversation(ctx context.Context, rec *model.ConversationRecord) error {
	query := `
		INSERT INTO conversation_logs (id, message, reply, outcome, took_ms)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, rec.ID, rec.Message, rec.Reply, rec.Outcome, rec.TookMS)
	if err != nil {
		return fmt.Errorf("failed to log conversation: %w", err)
	}
	return nil
}
