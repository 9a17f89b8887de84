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

	"github.com/bnema/panelbot/internal/domain"
	"github.com/bnema/panelbot/internal/ports"
)

const (
	MembersPathKey    = "members.path"
	membersFileMode   = 0o600
	membersDirMode    = 0o700
	membersConfigDir  = ".panelbot"
	membersConfigFile = "members.toml"
	tempFilePattern   = ".members-*.toml.tmp"
)

// Repository stores the member table in one TOML file. Instances pointing at
// the same path share a lock.
type Repository struct {
	membersPath string
	mu          *sync.RWMutex
	now         func() time.Time
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.MemberRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(MembersPathKey, filepath.Join(homeDir, membersConfigDir, membersConfigFile))

	membersPath := cfg.GetString(MembersPathKey)
	if membersPath == "" {
		return nil, errors.New("members path is empty")
	}
	membersPath, err = normalizeMembersPath(membersPath)
	if err != nil {
		return nil, err
	}

	return &Repository{membersPath: membersPath, mu: lockForPath(membersPath), now: time.Now}, nil
}

func (r *Repository) Path() string {
	return r.membersPath
}

func (r *Repository) Save(ctx context.Context, member domain.Member) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := member.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(member)
	encoded.UpdatedAt = r.now().UTC().Format(time.RFC3339)

	updated := false
	for i := range file.Members {
		if file.Members[i].UserID == encoded.UserID {
			file.Members[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Members = append(file.Members, encoded)
	}
	sort.Slice(file.Members, func(i, j int) bool { return file.Members[i].UserID < file.Members[j].UserID })

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) GetByID(ctx context.Context, id domain.UserID) (domain.Member, error) {
	if err := ctx.Err(); err != nil {
		return domain.Member{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Member{}, err
	}

	for _, entry := range file.Members {
		if entry.UserID == string(id) {
			return fromSchema(entry), nil
		}
	}

	return domain.Member{}, domain.ErrMemberNotFound
}

func (r *Repository) List(ctx context.Context) ([]domain.Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	members := make([]domain.Member, 0, len(file.Members))
	for _, entry := range file.Members {
		members = append(members, fromSchema(entry))
	}

	return members, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.membersPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read members file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode members file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeMembersPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve members path: %w", err)
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

// writeSchema replaces the file atomically through a temp file in the same
// directory.
func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.membersPath), membersDirMode); err != nil {
		return fmt.Errorf("create members directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode members file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.membersPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp members file: %w", err)
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
		return fmt.Errorf("write temp members file: %w", err)
	}
	if err := tempFile.Chmod(membersFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp members file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp members file: %w", err)
	}
	if err := os.Rename(tempName, r.membersPath); err != nil {
		return fmt.Errorf("replace members file: %w", err)
	}

	cleanup = false
	return nil
}

func toSchema(member domain.Member) memberSchema {
	return memberSchema{
		UserID:      string(member.UserID),
		Invites:     member.Invites,
		PanelUserID: int(member.PanelUserID),
		Admin:       member.Admin,
	}
}

func fromSchema(member memberSchema) domain.Member {
	invites := member.Invites
	if invites < 0 {
		invites = 0
	}

	return domain.Member{
		UserID:      domain.UserID(member.UserID),
		Invites:     invites,
		PanelUserID: domain.PanelUserID(member.PanelUserID),
		Admin:       member.Admin,
	}
}
