package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/piyush898784/rentz/internal/domain"
	"github.com/piyush898784/rentz/internal/repository"
)

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, owner_id, name, category, COALESCE(description, ''), price_per_day, availability, COALESCE(image_url, ''), created_on, updated_on`

func scanProduct(row interface{ Scan(...interface{}) error }, p *domain.Product) error {
	return row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Category, &p.Description, &p.PricePerDay, &p.Availability, &p.ImageURL, &p.CreatedOn, &p.UpdatedOn)
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (owner_id, name, category, description, price_per_day, availability, image_url, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.OwnerID, p.Name, p.Category, p.Description, p.PricePerDay, p.Availability, p.ImageURL, time.Now(), time.Now()).Scan(&p.ID)
}

func (r *productRepository) GetByID(ctx context.Context, id int32) (*domain.Product, error) {
	p := &domain.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	if err := scanProduct(r.db.QueryRowContext(ctx, query, id), p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productRepository) GetByIDForOwner(ctx context.Context, id, ownerID int32) (*domain.Product, error) {
	p := &domain.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND owner_id = $2`
	if err := scanProduct(r.db.QueryRowContext(ctx, query, id, ownerID), p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products SET name=$1, category=$2, description=$3, price_per_day=$4, availability=$5, image_url=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, p.Name, p.Category, p.Description, p.PricePerDay, p.Availability, p.ImageURL, time.Now(), p.ID)
	return err
}

// DeleteCascade removes the product and everything hanging off it. Payments
// go first, then rentals, then the product itself.
func (r *productRepository) DeleteCascade(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM payments WHERE rental_id IN (SELECT id FROM rentals WHERE product_id = $1)`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM rentals WHERE product_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *productRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE owner_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productRepository) ListAvailable(ctx context.Context, limit int32) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE availability = $1 ORDER BY created_on DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, domain.ProductAvailable, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productRepository) SearchAvailable(ctx context.Context, category, query string) ([]domain.Product, error) {
	sqlQuery := `SELECT ` + productColumns + ` FROM products WHERE availability = $1`
	args := []interface{}{domain.ProductAvailable}
	argIdx := 2

	if category != "" {
		sqlQuery += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, category)
		argIdx++
	}
	if query != "" {
		sqlQuery += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+query+"%")
		argIdx++
	}
	sqlQuery += " ORDER BY created_on DESC"

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productRepository) CountAvailable(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM products WHERE availability = $1`, domain.ProductAvailable).Scan(&count)
	return count, err
}

func (r *productRepository) CountByAvailability(ctx context.Context, ownerID int32) (map[domain.ProductAvailability]int32, error) {
	query := `SELECT availability, count(*) FROM products WHERE owner_id = $1 GROUP BY availability`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.ProductAvailability]int32)
	for rows.Next() {
		var availability domain.ProductAvailability
		var count int32
		if err := rows.Scan(&availability, &count); err != nil {
			return nil, err
		}
		counts[availability] = count
	}
	return counts, rows.Err()
}
