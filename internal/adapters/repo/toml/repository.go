package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/bnema/gathering-relay/internal/domain"
	"github.com/bnema/gathering-relay/internal/platform/config"
	"github.com/bnema/gathering-relay/internal/ports"
)

const (
	linksPathKey    = "links.path"
	linksFileMode   = 0o600
	linksDirMode    = 0o700
	linksConfigFile = "links.toml"
	tempFilePattern = ".links-*.toml.tmp"
)

// LinkRepository stores identity links in a TOML file. Writes go through a
// temp file and rename so readers never see a partial file.
type LinkRepository struct {
	linksPath string
	mu        *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.IdentityLinkRepository = (*LinkRepository)(nil)

func NewLinkRepository(cfg *viper.Viper) (*LinkRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	if !cfg.IsSet(linksPathKey) {
		dir, err := config.Dir()
		if err != nil {
			return nil, err
		}
		cfg.SetDefault(linksPathKey, filepath.Join(dir, linksConfigFile))
	}

	linksPath := cfg.GetString(linksPathKey)
	if linksPath == "" {
		return nil, errors.New("links path is empty")
	}
	linksPath, err := normalizeLinksPath(linksPath)
	if err != nil {
		return nil, err
	}

	return &LinkRepository{linksPath: linksPath, mu: lockForPath(linksPath)}, nil
}

func (r *LinkRepository) Path() string {
	return r.linksPath
}

func (r *LinkRepository) Save(ctx context.Context, link domain.IdentityLink) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(link)
	updated := false
	for i := range file.Links {
		if file.Links[i].UserID == encoded.UserID {
			file.Links[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Links = append(file.Links, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *LinkRepository) GetByUserID(ctx context.Context, userID domain.UserID) (domain.IdentityLink, error) {
	if err := ctx.Err(); err != nil {
		return domain.IdentityLink{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.IdentityLink{}, err
	}

	for _, entry := range file.Links {
		if entry.UserID == string(userID) {
			return fromSchema(entry), nil
		}
	}

	return domain.IdentityLink{}, domain.ErrIdentityLinkNotFound
}

// List returns every link ordered by user id.
func (r *LinkRepository) List(ctx context.Context) ([]domain.IdentityLink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	links := make([]domain.IdentityLink, 0, len(file.Links))
	for _, entry := range file.Links {
		links = append(links, fromSchema(entry))
	}
	sort.Slice(links, func(i, j int) bool { return links[i].UserID < links[j].UserID })

	return links, nil
}

func (r *LinkRepository) Remove(ctx context.Context, userID domain.UserID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Links[:0]
	found := false
	for _, entry := range file.Links {
		if entry.UserID == string(userID) {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return domain.ErrIdentityLinkNotFound
	}
	file.Links = kept

	return r.writeSchema(file)
}

func (r *LinkRepository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.linksPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read links file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode links file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *LinkRepository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.linksPath), linksDirMode); err != nil {
		return fmt.Errorf("create links directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode links file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.linksPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp links file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp links file: %w", err)
	}
	if err := tempFile.Chmod(linksFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp links file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp links file: %w", err)
	}
	if err := os.Rename(tempName, r.linksPath); err != nil {
		return fmt.Errorf("replace links file: %w", err)
	}
	cleanup = false

	return nil
}

func normalizeLinksPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve links path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(link domain.IdentityLink) linkSchema {
	return linkSchema{
		UserID:     string(link.UserID),
		Identities: append([]string(nil), link.Identities...),
		UpdatedAt:  formatTime(link.UpdatedAt),
	}
}

func fromSchema(entry linkSchema) domain.IdentityLink {
	return domain.IdentityLink{
		UserID:     domain.UserID(entry.UserID),
		Identities: append([]string(nil), entry.Identities...),
		UpdatedAt:  parseTime(entry.UpdatedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
