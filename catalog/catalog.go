package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/mahmoudsalah1112003-stack/ellithy-bags-shop/models"
)

// ErrNotFound is returned when a product id does not exist.
var ErrNotFound = errors.New("product not found")

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const productColumns = "id, name, description, price, discount_price, image_url, category, sub_category, is_offer, created_at"

func (s *Store) GetByID(ctx context.Context, id string) (models.Product, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = ?", id)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, err
	}
	return product, nil
}

// ListByCategory returns a category's products, newest first. An empty
// subCategory means no sub-category filter.
func (s *Store) ListByCategory(ctx context.Context, category, subCategory string) ([]models.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE category = ?"
	args := []interface{}{category}
	if subCategory != "" {
		query += " AND sub_category = ?"
		args = append(args, subCategory)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

// ListOffers returns flagged offer products, newest first. A limit of zero
// or less returns all of them.
func (s *Store) ListOffers(ctx context.Context, limit int) ([]models.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE is_offer = TRUE ORDER BY created_at DESC"
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

// Upsert creates the product when input.ID is empty and updates it
// otherwise. Invalid form fields yield an error wrapping ErrInvalidInput;
// updating a missing id yields ErrNotFound.
func (s *Store) Upsert(ctx context.Context, input models.ProductInput) (models.Product, error) {
	product, err := parseInput(input)
	if err != nil {
		return models.Product{}, err
	}

	if product.ID == "" {
		product.ID = uuid.New().String()
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO products (id, name, description, price, discount_price, image_url, category, sub_category, is_offer)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			product.ID, product.Name, nullable(product.Description), product.Price,
			nullableFloat(product.DiscountPrice), nullable(product.ImageURL),
			product.Category, nullable(product.SubCategory), product.IsOffer,
		)
		if err != nil {
			return models.Product{}, err
		}
		return s.GetByID(ctx, product.ID)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE products
		SET name = ?, description = ?, price = ?, discount_price = ?, image_url = ?, category = ?, sub_category = ?, is_offer = ?
		WHERE id = ?`,
		product.Name, nullable(product.Description), product.Price,
		nullableFloat(product.DiscountPrice), nullable(product.ImageURL),
		product.Category, nullable(product.SubCategory), product.IsOffer, product.ID,
	)
	if err != nil {
		return models.Product{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return models.Product{}, err
	}
	if affected == 0 {
		// The update may also report zero rows when nothing changed; check
		// existence before deciding it is a missing id.
		if _, err := s.GetByID(ctx, product.ID); err != nil {
			return models.Product{}, err
		}
	}
	return s.GetByID(ctx, product.ID)
}

// Delete removes the product unconditionally. Order items referencing it
// keep their price snapshot and merely lose the live name and image.
func (s *Store) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	var description, imageURL, subCategory sql.NullString
	var discount sql.NullFloat64
	err := row.Scan(&p.ID, &p.Name, &description, &p.Price, &discount,
		&imageURL, &p.Category, &subCategory, &p.IsOffer, &p.CreatedAt)
	if err != nil {
		return models.Product{}, err
	}
	p.Description = description.String
	p.ImageURL = imageURL.String
	p.SubCategory = subCategory.String
	if discount.Valid {
		v := discount.Float64
		p.DiscountPrice = &v
	}
	return p, nil
}

func collectProducts(rows *sql.Rows) ([]models.Product, error) {
	products := make([]models.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.WithError(err).Error("error scanning product row")
			continue
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullableFloat(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}
