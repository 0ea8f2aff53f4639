// Package legacy reads the key/value table of the old site backend.
// Keys encode a namespace (`site:settings`, `blog:post:<id>`, `page:<id>`)
// plus append-only `history:` snapshot rows; values are JSON documents.
package legacy

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/microsoft/go-mssqldb"
)

// DefaultChunkSize bounds IN-list sizes on multi-key lookups; the backend
// does not guarantee unbounded IN lists.
const DefaultChunkSize = 20

// DefaultPageSize is the range-scan page for key scans.
const DefaultPageSize = 1000

// Row is a raw key/value pair. Value is left undecoded; callers validate
// it against the record type the key's namespace implies.
type Row struct {
	Key   string
	Value json.RawMessage
}

// Store reads the legacy key/value table. It never writes.
type Store struct {
	db    *sql.DB
	table string
}

// Open connects to the legacy database and pings it before returning.
func Open(connString, table string) (*Store, error) {
	db, err := sql.Open("sqlserver", connString)
	if err != nil {
		return nil, fmt.Errorf("error opening legacy database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to legacy database (ping failed): %w", err)
	}

	return &Store{db: db, table: table}, nil
}

// NewStore wraps an existing connection, mainly for tests.
func NewStore(db *sql.DB, table string) *Store {
	return &Store{db: db, table: table}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// GetByKey returns the value stored under key, or nil when the key is absent.
func (s *Store) GetByKey(ctx context.Context, key string) (json.RawMessage, error) {
	query := fmt.Sprintf("SELECT [value] FROM %s WHERE [key] = @p1", s.table)

	var value []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return json.RawMessage(value), nil
}

// GetByPrefix returns every row whose key starts with prefix.
func (s *Store) GetByPrefix(ctx context.Context, prefix string) ([]Row, error) {
	query := fmt.Sprintf("SELECT [key], [value] FROM %s WHERE [key] LIKE @p1 ORDER BY [key]", s.table)

	rows, err := s.db.QueryContext(ctx, query, likePattern(prefix))
	if err != nil {
		return nil, fmt.Errorf("prefix scan %q: %w", prefix, err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		out = append(out, Row{Key: key, Value: json.RawMessage(value)})
	}
	return out, rows.Err()
}

// ScanKeysByPrefix pages through every key under prefix. The scan stops on
// an empty page or one shorter than pageSize; a single call never returns
// everything in one query.
func (s *Store) ScanKeysByPrefix(ctx context.Context, prefix string, pageSize int) ([]string, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	query := fmt.Sprintf(
		"SELECT [key] FROM %s WHERE [key] LIKE @p1 ORDER BY [key] OFFSET @p2 ROWS FETCH NEXT @p3 ROWS ONLY",
		s.table)

	var keys []string
	offset := 0
	for {
		page, err := s.scanKeyPage(ctx, query, likePattern(prefix), offset, pageSize)
		if err != nil {
			return nil, fmt.Errorf("key scan %q at offset %d: %w", prefix, offset, err)
		}
		if len(page) == 0 {
			break
		}
		keys = append(keys, page...)
		offset += len(page)
		if len(page) < pageSize {
			break
		}
	}
	return keys, nil
}

func (s *Store) scanKeyPage(ctx context.Context, query, pattern string, offset, limit int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, pattern, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// GetManyByKeys fetches the given keys in IN-list chunks. Missing keys are
// silently absent from the result.
func (s *Store) GetManyByKeys(ctx context.Context, keys []string, chunkSize int) ([]Row, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	var out []Row
	for _, chunk := range Chunks(keys, chunkSize) {
		placeholders := make([]string, len(chunk))
		args := make([]interface{}, len(chunk))
		for i, k := range chunk {
			placeholders[i] = fmt.Sprintf("@p%d", i+1)
			args[i] = k
		}
		query := fmt.Sprintf("SELECT [key], [value] FROM %s WHERE [key] IN (%s)",
			s.table, strings.Join(placeholders, ", "))

		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("multi-get: %w", err)
		}
		for rows.Next() {
			var key string
			var value []byte
			if err := rows.Scan(&key, &value); err != nil {
				rows.Close()
				return nil, err
			}
			out = append(out, Row{Key: key, Value: json.RawMessage(value)})
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}
	return out, nil
}

// Chunks splits keys into slices of at most size elements.
func Chunks(keys []string, size int) [][]string {
	var out [][]string
	for start := 0; start < len(keys); start += size {
		end := start + size
		if end > len(keys) {
			end = len(keys)
		}
		out = append(out, keys[start:end])
	}
	return out
}

func likePattern(prefix string) string {
	escaped := strings.NewReplacer("[", "[[]", "%", "[%]", "_", "[_]").Replace(prefix)
	return escaped + "%"
}
