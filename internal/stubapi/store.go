package stubapi

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/goalline/internal/client/models"
	"github.com/dmitrijs2005/goalline/internal/cryptox"
	"github.com/google/uuid"
)

var (
	errDuplicateEmail     = errors.New("email already registered")
	errInvalidCredentials = errors.New("invalid email or password")
	errNoteNotFound       = errors.New("note not found")
	errNotOwner           = errors.New("not the note's author")
)

type account struct {
	ID    string
	Email string
	Role  models.Role
	Salt  []byte
	Hash  []byte
}

func (a *account) identity() *models.Identity {
	return &models.Identity{ID: a.ID, Email: a.Email, Role: a.Role}
}

// Store holds everything the stub mutates: accounts, revoked tokens and
// match notes. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*account // by email
	revoked  map[string]time.Time
	notes    []models.Note
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[string]*account),
		revoked:  make(map[string]time.Time),
		now:      time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account with the given role.
func (s *Store) Register(email, password string, role models.Role) (*account, error) {
	email = normalizeEmail(email)

	salt, err := cryptox.NewSalt()
	if err != nil {
		return nil, err
	}
	pw := []byte(password)
	hash := cryptox.HashPassword(pw, salt)
	cryptox.Wipe(pw)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[email]; exists {
		return nil, errDuplicateEmail
	}
	a := &account{ID: uuid.NewString(), Email: email, Role: role, Salt: salt, Hash: hash}
	s.accounts[email] = a
	return a, nil
}

// Authenticate returns the account matching email and password.
func (s *Store) Authenticate(email, password string) (*account, error) {
	s.mu.RLock()
	a, ok := s.accounts[normalizeEmail(email)]
	s.mu.RUnlock()

	if !ok {
		return nil, errInvalidCredentials
	}
	pw := []byte(password)
	defer cryptox.Wipe(pw)
	if !cryptox.VerifyPassword(pw, a.Salt, a.Hash) {
		return nil, errInvalidCredentials
	}
	return a, nil
}

func (s *Store) accountByID(id string) (*account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}

// Revoke blacklists a token id until it would have expired anyway.
func (s *Store) Revoke(tokenID string, expires time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, exp := range s.revoked {
		if exp.Before(now) {
			delete(s.revoked, id)
		}
	}
	s.revoked[tokenID] = expires
}

func (s *Store) IsRevoked(tokenID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.revoked[tokenID]
	return ok
}

// Notes returns the notes of a match, oldest first.
func (s *Store) Notes(matchID string) []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Note{}
	for _, n := range s.notes {
		if n.MatchID == matchID {
			out = append(out, n)
		}
	}
	return out
}

func (s *Store) AddNote(matchID, text string, author *account) models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := s.now().UTC()
	n := models.Note{
		ID:        uuid.NewString(),
		MatchID:   matchID,
		Text:      text,
		CreatedBy: models.NoteAuthor{UserID: author.ID, Username: author.Email, Role: author.Role},
		CreatedAt: &created,
	}
	s.notes = append(s.notes, n)
	return n
}

// EditNote replaces a note's text. Only its author or an admin may edit.
func (s *Store) EditNote(id, text string, by *account) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.findNote(id, by)
	if err != nil {
		return models.Note{}, err
	}
	edited := s.now().UTC()
	s.notes[i].Text = text
	s.notes[i].EditedAt = &edited
	return s.notes[i], nil
}

// DeleteNote removes a note. Only its author or an admin may delete.
func (s *Store) DeleteNote(id string, by *account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.findNote(id, by)
	if err != nil {
		return err
	}
	s.notes = append(s.notes[:i], s.notes[i+1:]...)
	return nil
}

func (s *Store) findNote(id string, by *account) (int, error) {
	for i, n := range s.notes {
		if n.ID != id {
			continue
		}
		if n.CreatedBy.UserID != by.ID && by.Role != models.RoleAdmin {
			return -1, errNotOwner
		}
		return i, nil
	}
	return -1, errNoteNotFound
}
