package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/itemservice/internal/db"
	"github.com/erazemk/itemservice/internal/model"
)

// SQL stores items in a relational database.
type SQL struct {
	DB     *sql.DB
	Driver string
}

// NewSQL returns a store over an open database. driver is one of
// db.DriverSQLite or db.DriverPostgres.
func NewSQL(database *sql.DB, driver string) *SQL {
	return &SQL{DB: database, Driver: driver}
}

func (s *SQL) q(query string) string {
	return db.Rebind(s.Driver, query)
}

// Save implements Store.
func (s *SQL) Save(ctx context.Context, item model.Item) (model.Item, error) {
	var id int64
	err := s.DB.QueryRowContext(ctx,
		s.q(`INSERT INTO items (item_name, price, quantity) VALUES (?, ?, ?) RETURNING id`),
		item.ItemName, nullInt(item.Price), nullInt(item.Quantity),
	).Scan(&id)
	if err != nil {
		return model.Item{}, fmt.Errorf("creating item: %w", err)
	}

	saved := item.Clone()
	saved.ID = &id
	return saved, nil
}

// FindByID implements Store.
func (s *SQL) FindByID(ctx context.Context, id int64) (model.Item, error) {
	row := s.DB.QueryRowContext(ctx,
		s.q(`SELECT id, item_name, price, quantity FROM items WHERE id = ?`), id,
	)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, ErrNotFound
	}
	if err != nil {
		return model.Item{}, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// FindAll implements Store.
func (s *SQL) FindAll(ctx context.Context) ([]model.Item, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, item_name, price, quantity FROM items ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Update implements Store.
func (s *SQL) Update(ctx context.Context, id int64, item model.Item) error {
	result, err := s.DB.ExecContext(ctx,
		s.q(`UPDATE items SET item_name = ?, price = ?, quantity = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`),
		item.ItemName, nullInt(item.Price), nullInt(item.Quantity), id,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(sc scanner) (model.Item, error) {
	var (
		id              int64
		item            model.Item
		price, quantity sql.NullInt64
	)
	if err := sc.Scan(&id, &item.ItemName, &price, &quantity); err != nil {
		return model.Item{}, err
	}
	item.ID = &id
	if price.Valid {
		p := int(price.Int64)
		item.Price = &p
	}
	if quantity.Valid {
		q := int(quantity.Int64)
		item.Quantity = &q
	}
	return item, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
