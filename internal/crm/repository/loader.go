package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skirdsawad/papertech-crm-poc/internal/crm/entity"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	SourceGenerated = "generated"
	SourceFile      = "file"
	SourcePostgres  = "postgres"
)

// LoaderOptions 数据源选项
type LoaderOptions struct {
	Source    string
	Generator GeneratorOptions
	FilePath  string
	DB        *gorm.DB
}

// NewLoader picks the loader for opts.Source.
func NewLoader(opts LoaderOptions) (Loader, error) {
	switch opts.Source {
	case SourceGenerated, "":
		return NewGeneratedLoader(opts.Generator), nil
	case SourceFile:
		if opts.FilePath == "" {
			return nil, fmt.Errorf("file source: data.file_path is empty")
		}
		return NewFileLoader(opts.FilePath), nil
	case SourcePostgres:
		if opts.DB == nil {
			return nil, fmt.Errorf("postgres source: database is not configured")
		}
		return NewPostgresLoader(opts.DB), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, opts.Source)
}

// --- JSON files ---

// FileLoader reads one JSON array per collection from a directory, using the
// same field names as the HTTP API. customers.json is required; the other
// files may be absent.
type FileLoader struct {
	dir string
}

func NewFileLoader(dir string) *FileLoader {
	return &FileLoader{dir: dir}
}

func (l *FileLoader) Source() string { return SourceFile }

func (l *FileLoader) Load(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	files := []struct {
		name     string
		target   any
		required bool
	}{
		{"customers.json", &snap.Customers, true},
		{"orders.json", &snap.Orders, false},
		{"invoices.json", &snap.Invoices, false},
		{"deliveries.json", &snap.Deliveries, false},
		{"memberships.json", &snap.Memberships, false},
		{"membership_transactions.json", &snap.Transactions, false},
		{"campaigns.json", &snap.Campaigns, false},
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(l.dir, f.name)
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) && !f.required {
				continue
			}
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if err := json.Unmarshal(data, f.target); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}
	return &snap, nil
}

// --- Postgres ---

// PostgresLoader reads the replicated SAP snapshot tables. Collections are
// fetched concurrently; the first failure cancels the rest.
type PostgresLoader struct {
	db *gorm.DB
}

func NewPostgresLoader(db *gorm.DB) *PostgresLoader {
	return &PostgresLoader{db: db}
}

func (l *PostgresLoader) Source() string { return SourcePostgres }

func (l *PostgresLoader) Load(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return l.find(ctx, &snap.Customers, "customer_no") })
	g.Go(func() error { return l.find(ctx, &snap.Orders, "order_date") })
	g.Go(func() error { return l.find(ctx, &snap.Invoices, "invoice_date") })
	g.Go(func() error { return l.find(ctx, &snap.Deliveries, "planned_date") })
	g.Go(func() error { return l.find(ctx, &snap.Memberships, "customer_no") })
	g.Go(func() error { return l.find(ctx, &snap.Transactions, "transaction_date DESC") })
	g.Go(func() error { return l.find(ctx, &snap.Campaigns, "start_date") })

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (l *PostgresLoader) find(ctx context.Context, dest any, order string) error {
	if err := l.db.WithContext(ctx).Order(order).Find(dest).Error; err != nil {
		return fmt.Errorf("query %T: %w", dest, err)
	}
	return nil
}

// Seed writes snap into the snapshot tables, replacing rows with the same key.
// Used to prime a development database from the generator.
func Seed(ctx context.Context, db *gorm.DB, snap *Snapshot) error {
	if err := entity.AutoMigrate(db); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []func() error{
			func() error { return saveAll(tx, snap.Customers) },
			func() error { return saveAll(tx, snap.Orders) },
			func() error { return saveAll(tx, snap.Invoices) },
			func() error { return saveAll(tx, snap.Deliveries) },
			func() error { return saveAll(tx, snap.Memberships) },
			func() error { return saveAll(tx, snap.Transactions) },
			func() error { return saveAll(tx, snap.Campaigns) },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}
		return nil
	})
}

func saveAll[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if err := tx.Save(&rows).Error; err != nil {
		return fmt.Errorf("save %T: %w", rows, err)
	}
	return nil
}
