package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/proforientation/internal/careertest"
	"github.com/spigell/proforientation/internal/logger"
)

var ErrNotFound = errors.New("no stored result")

// Record is a stored test result. Result keeps the "<category>|||<description>"
// form read by the rest of the application.
type Record struct {
	User    string    `json:"user"`
	Result  string    `json:"result"`
	TakenAt time.Time `json:"taken_at"`
}

// Decoded returns the structured form of the stored result.
func (r *Record) Decoded() careertest.TestResult {
	return careertest.Decode(r.Result)
}

type file struct {
	Results []*Record `json:"results"`
}

// Store keeps the latest result of every user in a JSON file.
type Store struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
	now    func() time.Time
}

func New(path string, l *zap.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.WithFields(l),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Save stores the result for user, replacing any previous attempt.
func (s *Store) Save(user string, result careertest.TestResult) (*Record, error) {
	user = strings.TrimSpace(user)
	if user == "" {
		return nil, errors.New("user is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.read()
	if err != nil {
		return nil, err
	}

	record := &Record{
		User:    user,
		Result:  careertest.Encode(result),
		TakenAt: s.now(),
	}

	replaced := false
	for i, r := range f.Results {
		if r.User == user {
			f.Results[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		f.Results = append(f.Results, record)
	}

	if err := s.write(f); err != nil {
		return nil, err
	}

	logger.WithUser(s.logger, user).Debug("result saved",
		zap.String("path", s.path),
		zap.Bool("replaced", replaced),
	)

	return record, nil
}

// Get returns the stored record of user.
func (s *Store) Get(user string) (*Record, error) {
	user = strings.TrimSpace(user)

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.read()
	if err != nil {
		return nil, err
	}

	for _, r := range f.Results {
		if r.User == user {
			return r, nil
		}
	}

	return nil, fmt.Errorf("%w for user %q", ErrNotFound, user)
}

// List returns all records, newest first.
func (s *Store) List() ([]*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.read()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(f.Results, func(i, j int) bool {
		return f.Results[i].TakenAt.After(f.Results[j].TakenAt)
	})

	return f.Results, nil
}

func (s *Store) read() (*file, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &file{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading results file: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return &file{}, nil
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing results file %q: %w", s.path, err)
	}

	return &f, nil
}

func (s *Store) write(f *file) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating results directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".results_*.json")
	if err != nil {
		return fmt.Errorf("creating temp results file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding results: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}
