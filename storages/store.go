package storages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

var ErrProgramNotFound = errors.New("program not found")

// Store keeps named programs in a sqlite database.
type Store struct {
	db *sql.DB
}

const schema = `
create table if not exists programs (
	name text primary key,
	source text not null,
	updated_at integer not null
)
`

func OpenStore(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	// sqlite allows one writer
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init store %s: %w", path, err)
	}
	return &Store{
		db: db,
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts or replaces the program called name.
func (s *Store) Save(ctx context.Context, name string, source string) error {
	if name == "" {
		return fmt.Errorf("empty program name")
	}
	return WithTx(ctx, s.db, func(tx Tx) error {
		_, err := tx.Exec(ctx, `
			insert into programs (name, source, updated_at) values (?, ?, ?)
			on conflict(name) do update set source = excluded.source, updated_at = excluded.updated_at
		`, name, source, time.Now().Unix())
		if err != nil {
			return fmt.Errorf("save %s: %w", name, err)
		}
		return nil
	})
}

func (s *Store) Load(ctx context.Context, name string) (source string, err error) {
	err = WithTx(ctx, s.db, func(tx Tx) error {
		err := tx.QueryRow(ctx, `select source from programs where name = ?`, name).Scan(&source)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s", ErrProgramNotFound, name)
		}
		return err
	})
	return
}

// List returns all program names in order.
func (s *Store) List(ctx context.Context) (names []string, err error) {
	err = WithTx(ctx, s.db, func(tx Tx) error {
		rows, err := tx.Query(ctx, `select name from programs order by name`)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return err
			}
			names = append(names, name)
		}
		return rows.Err()
	})
	return
}

func (s *Store) Delete(ctx context.Context, name string) error {
	return WithTx(ctx, s.db, func(tx Tx) error {
		res, err := tx.Exec(ctx, `delete from programs where name = ?`, name)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: %s", ErrProgramNotFound, name)
		}
		return nil
	})
}
