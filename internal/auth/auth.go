// Package auth implements the storefront's deliberately small sign-in
// scheme: any well-formed email plus a password signs in as a regular user;
// the configured admin pair signs in as admin. Sessions live in a
// persistence slot keyed by the sid cookie.
package auth

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"pygextintores/internal/domain"
	"pygextintores/internal/kv"
)

var ErrBadCreds = errors.New("invalid email or password")

// SessionsKey is the persistence slot holding the sid -> session table.
const SessionsKey = "pyg_auth"

type Service struct {
	mu         sync.Mutex
	kv         kv.Store
	adminEmail string
	adminHash  []byte
}

func NewService(store kv.Store, adminEmail, adminPassword string) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 12)
	if err != nil {
		return nil, err
	}
	return &Service{kv: store, adminEmail: adminEmail, adminHash: hash}, nil
}

type session struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s *Service) sessions() map[string]session {
	raw, ok, err := s.kv.Get(SessionsKey)
	if err != nil || !ok {
		return map[string]session{}
	}
	table := map[string]session{}
	if json.Unmarshal(raw, &table) != nil {
		return map[string]session{}
	}
	return table
}

func (s *Service) saveSessions(table map[string]session) error {
	raw, err := json.Marshal(table)
	if err != nil {
		return err
	}
	return s.kv.Put(SessionsKey, raw)
}

// Login binds sid to a session. The admin email must present the admin
// password; every other email signs in as a regular user.
func (s *Service) Login(sid, email, password string) (*domain.User, error) {
	role := domain.RoleUser
	if strings.EqualFold(email, s.adminEmail) {
		if bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)) != nil {
			return nil, ErrBadCreds
		}
		role = domain.RoleAdmin
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	table := s.sessions()
	table[sid] = session{Email: email, Role: role}
	if err := s.saveSessions(table); err != nil {
		return nil, err
	}
	return &domain.User{Email: email, Role: role}, nil
}

func (s *Service) Logout(sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	table := s.sessions()
	delete(table, sid)
	return s.saveSessions(table)
}

// CurrentUser returns the user bound to sid, or nil when the session is
// unknown.
func (s *Service) CurrentUser(sid string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions()[sid]
	if !ok {
		return nil, nil
	}
	return &domain.User{Email: sess.Email, Role: sess.Role}, nil
}
