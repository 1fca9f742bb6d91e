// Package filestore implements domain.EmbeddingStore as one JSON file per
// cache entry on an afero file system.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cleitonmarx/docexplore/internal/domain"
	"github.com/cleitonmarx/docexplore/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// entryFile is the on-disk layout of one cache entry.
type entryFile struct {
	Key        string                 `json:"key"`
	Model      string                 `json:"model"`
	Dimensions int                    `json:"dimensions"`
	Vector     domain.EmbeddingVector `json:"vector"`
	CreatedAt  time.Time              `json:"created_at"`
}

// Store is a content-addressed embedding store rooted at a directory.
// Entries live at <root>/<escaped model>/<digest>.json.
type Store struct {
	fs     afero.Fs
	root   string
	clock  domain.CurrentTimeProvider
	logger *log.Logger
}

// NewStore creates a new Store.
func NewStore(fsys afero.Fs, root string, clock domain.CurrentTimeProvider, logger *log.Logger) Store {
	return Store{
		fs:     fsys,
		root:   root,
		clock:  clock,
		logger: logger,
	}
}

// Get implements domain.EmbeddingStore. Missing and unreadable entries are misses.
func (s Store) Get(ctx context.Context, keys []domain.CacheKey) (map[domain.CacheKey]domain.EmbeddingVector, error) {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("keys", len(keys)),
	))
	defer span.End()

	found := make(map[domain.CacheKey]domain.EmbeddingVector, len(keys))
	for _, key := range keys {
		entry, err := s.read(key)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if errors.Is(err, errCorruptEntry) {
			s.logger.Printf("FileStore: ignoring unreadable entry %s: %v", s.path(key), err)
			continue
		}
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, fmt.Errorf("read cache entry %s: %w", key, err)
		}
		found[key] = entry.Vector
	}

	span.SetAttributes(attribute.Int("found", len(found)))
	return found, nil
}

// Put implements domain.EmbeddingStore. Valid existing entries are kept, so
// concurrent writers of the same key keep the first value.
func (s Store) Put(ctx context.Context, entries []domain.CacheEntry) error {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("entries", len(entries)),
	))
	defer span.End()

	now := s.clock.Now()
	for _, e := range entries {
		if _, err := s.read(e.Key); err == nil {
			continue
		}
		err := s.write(e.Key, entryFile{
			Key:        e.Key.String(),
			Model:      e.Key.Model,
			Dimensions: len(e.Vector),
			Vector:     e.Vector,
			CreatedAt:  now,
		})
		if telemetry.RecordErrorAndStatus(span, err) {
			return fmt.Errorf("write cache entry %s: %w", e.Key, err)
		}
	}
	return nil
}

var errCorruptEntry = errors.New("corrupt cache entry")

func (s Store) read(key domain.CacheKey) (entryFile, error) {
	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		return entryFile{}, err
	}

	var entry entryFile
	if err := json.Unmarshal(data, &entry); err != nil {
		return entryFile{}, fmt.Errorf("%w: %v", errCorruptEntry, err)
	}
	if entry.Key != key.String() || len(entry.Vector) == 0 || len(entry.Vector) != entry.Dimensions {
		return entryFile{}, fmt.Errorf("%w: key or dimensions do not match", errCorruptEntry)
	}
	return entry, nil
}

// write stores the entry through a temp file and a rename so readers never
// observe a partial file.
func (s Store) write(key domain.CacheKey, entry entryFile) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	dir := s.modelDir(key.Model)
	if err := s.fs.MkdirAll(dir, dirPermissions); err != nil {
		return err
	}

	tmp, err := afero.TempFile(s.fs, dir, key.Digest+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return err
	}
	if err := s.fs.Chmod(tmpName, filePermissions); err != nil {
		_ = s.fs.Remove(tmpName)
		return err
	}
	if err := s.fs.Rename(tmpName, s.path(key)); err != nil {
		_ = s.fs.Remove(tmpName)
		return err
	}
	return nil
}

func (s Store) modelDir(model string) string {
	return filepath.Join(s.root, url.PathEscape(model))
}

func (s Store) path(key domain.CacheKey) string {
	return filepath.Join(s.modelDir(key.Model), key.Digest+".json")
}

// expandHome replaces a leading "~" with the user home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// InitEmbeddingStore registers the file backed domain.EmbeddingStore when
// EMBEDDING_STORE is "file". Any backend other than "file" or "postgres" is rejected.
type InitEmbeddingStore struct {
	Logger  *log.Logger                `resolve:""`
	Clock   domain.CurrentTimeProvider `resolve:""`
	Backend string                     `config:"EMBEDDING_STORE" default:"file"`
	Dir     string                     `config:"EMBEDDING_CACHE_DIR" default:"~/.docexplore-embeddings"`
}

// Initialize registers the Store in the dependency container.
func (i InitEmbeddingStore) Initialize(ctx context.Context) (context.Context, error) {
	switch i.Backend {
	case "file":
	case "postgres":
		return ctx, nil
	default:
		return ctx, domain.NewValidationErr(fmt.Sprintf("EMBEDDING_STORE must be \"file\" or \"postgres\", got %q", i.Backend))
	}

	root, err := expandHome(i.Dir)
	if err != nil {
		return ctx, err
	}

	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(root, dirPermissions); err != nil {
		return ctx, fmt.Errorf("create embedding cache dir: %w", err)
	}

	i.Logger.Printf("FileStore: caching embeddings in %s", root)
	depend.Register[domain.EmbeddingStore](NewStore(osFs, root, i.Clock, i.Logger))
	return ctx, nil
}
