// Package store persists finalized conformer records in a SQLite database
// for id, bond topology, and SMILES lookups. Records are stored as JSON
// blobs keyed by conformer ID, with side tables mapping bond topology IDs
// and SMILES strings back to the conformers they appear in.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3" // sqlite driver

	"github.com/openchem/molmap/pkg/constants"
	"github.com/openchem/molmap/pkg/dataset"
	"github.com/openchem/molmap/pkg/errors"
)

// DefaultBatchSize is how many records a bulk insert writes per transaction.
const DefaultBatchSize = constants.InsertBatchSize

// Store is a SQLite-backed collection of finalized conformer records.
type Store struct {
	db   *sql.DB
	path string
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS conformer (
		cid INTEGER PRIMARY KEY,
		record BLOB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS btid (
		btid INTEGER NOT NULL,
		cid INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_btid ON btid(btid)`,
	`CREATE TABLE IF NOT EXISTS smiles (
		smiles TEXT PRIMARY KEY,
		btid INTEGER NOT NULL
	)`,
}

// Open opens an existing database for reading and writing.
func Open(path string) (*Store, error) {
	return open(path, false)
}

// Create opens a database, creating the file and schema when absent.
func Create(path string) (*Store, error) {
	return open(path, true)
}

func open(path string, create bool) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.WrapStore("open", path, err)
	}
	if create {
		for _, stmt := range schema {
			if _, err := db.Exec(stmt); err != nil {
				_ = db.Close()
				return nil, errors.WrapStore("create schema", path, err)
			}
		}
	}
	return &Store{db: db, path: path}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return errors.WrapStore("close", s.path, err)
	}
	return nil
}

// BulkInsert writes records in batches of batchSize per transaction. A
// batchSize below 1 uses DefaultBatchSize. Inserting an already stored
// conformer ID fails the batch.
func (s *Store) BulkInsert(ctx context.Context, records []*dataset.Conformer, batchSize int) error {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	for start := 0; start < len(records); start += batchSize {
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := s.insertBatch(ctx, records[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) insertBatch(ctx context.Context, records []*dataset.Conformer) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.WrapStore("begin", s.path, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, c := range records {
		encoded, err := json.Marshal(c)
		if err != nil {
			return errors.WrapStore("encode", s.path,
				fmt.Errorf("conformer %d: %w", c.ConformerID, err))
		}

		query, args, err := sq.Insert("conformer").
			Columns("cid", "record").
			Values(c.ConformerID, encoded).
			ToSql()
		if err != nil {
			return errors.WrapStore("build insert", s.path, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return errors.WrapStore("insert conformer", s.path,
				fmt.Errorf("conformer %d: %w", c.ConformerID, err))
		}

		for _, bt := range c.BondTopologies {
			query, args, err := sq.Insert("btid").
				Columns("btid", "cid").
				Values(bt.BondTopologyID, c.ConformerID).
				ToSql()
			if err != nil {
				return errors.WrapStore("build insert", s.path, err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return errors.WrapStore("insert btid", s.path, err)
			}

			if bt.SMILES != "" {
				query, args, err := sq.Insert("smiles").
					Options("OR IGNORE").
					Columns("smiles", "btid").
					Values(bt.SMILES, bt.BondTopologyID).
					ToSql()
				if err != nil {
					return errors.WrapStore("build insert", s.path, err)
				}
				if _, err := tx.ExecContext(ctx, query, args...); err != nil {
					return errors.WrapStore("insert smiles", s.path, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.WrapStore("commit", s.path, err)
	}
	return nil
}

// Conformer returns the record stored under the given conformer ID.
func (s *Store) Conformer(ctx context.Context, conformerID int64) (*dataset.Conformer, error) {
	query, args, err := sq.Select("record").
		From("conformer").
		Where(sq.Eq{"cid": conformerID}).
		ToSql()
	if err != nil {
		return nil, errors.WrapStore("build select", s.path, err)
	}

	var encoded []byte
	row := s.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&encoded); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("conformer", fmt.Sprintf("%d", conformerID))
		}
		return nil, errors.WrapStore("select conformer", s.path, err)
	}
	return decode(encoded)
}

// ByBondTopologyID returns every conformer associated with the given bond
// topology, ordered by conformer ID.
func (s *Store) ByBondTopologyID(ctx context.Context, bondTopologyID int64) ([]*dataset.Conformer, error) {
	query, args, err := sq.Select("conformer.record").
		From("conformer").
		Join("btid ON btid.cid = conformer.cid").
		Where(sq.Eq{"btid.btid": bondTopologyID}).
		OrderBy("conformer.cid").
		ToSql()
	if err != nil {
		return nil, errors.WrapStore("build select", s.path, err)
	}
	return s.queryConformers(ctx, query, args)
}

// BySmiles returns every conformer whose bond topology is stored under the
// given SMILES string, ordered by conformer ID.
func (s *Store) BySmiles(ctx context.Context, smiles string) ([]*dataset.Conformer, error) {
	query, args, err := sq.Select("btid").
		From("smiles").
		Where(sq.Eq{"smiles": smiles}).
		ToSql()
	if err != nil {
		return nil, errors.WrapStore("build select", s.path, err)
	}

	var btid int64
	row := s.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&btid); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("smiles", smiles)
		}
		return nil, errors.WrapStore("select smiles", s.path, err)
	}
	return s.ByBondTopologyID(ctx, btid)
}

// Count returns the number of stored conformers.
func (s *Store) Count(ctx context.Context) (int64, error) {
	query, _, err := sq.Select("COUNT(*)").From("conformer").ToSql()
	if err != nil {
		return 0, errors.WrapStore("build select", s.path, err)
	}
	var count int64
	if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, errors.WrapStore("count", s.path, err)
	}
	return count, nil
}

func (s *Store) queryConformers(ctx context.Context, query string, args []interface{}) ([]*dataset.Conformer, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.WrapStore("select", s.path, err)
	}
	defer func() { _ = rows.Close() }()

	var out []*dataset.Conformer
	for rows.Next() {
		var encoded []byte
		if err := rows.Scan(&encoded); err != nil {
			return nil, errors.WrapStore("scan", s.path, err)
		}
		c, err := decode(encoded)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapStore("iterate", s.path, err)
	}
	return out, nil
}

func decode(encoded []byte) (*dataset.Conformer, error) {
	var c dataset.Conformer
	if err := json.Unmarshal(encoded, &c); err != nil {
		return nil, errors.WrapParse("json", "conformer record", err)
	}
	return &c, nil
}
