package chrome

import (
	"errors"
	"sync"
	"time"
)

const (
	MenuUser    = "user"
	MenuProfile = "profile"
)

const (
	DefaultIdleTTL    = 30 * time.Minute
	DefaultMaxClients = 10000
)

var (
	ErrUnknownMenu  = errors.New("unknown menu")
	ErrUnknownField = errors.New("unknown password field")
)

// PasswordFields are the inputs that carry a visibility toggle.
var PasswordFields = []string{"password", "confirmPassword", "loginPassword"}

// State is the chrome of the page a client currently has open.
type State struct {
	Page      string                     `json:"page"`
	Loader    *Loader                    `json:"-"`
	Menus     map[string]*Dropdown       `json:"menus"`
	Passwords map[string]*PasswordToggle `json:"passwords"`

	lastSeen time.Time
}

func NewState() *State {
	s := &State{}
	s.reset()
	return s
}

func (s *State) reset() {
	if s.Loader != nil {
		s.Loader.Stop()
	}
	s.Loader = NewLoader()
	s.Menus = map[string]*Dropdown{
		MenuUser:    NewDropdown("userDropdown", "logoutBtn"),
		MenuProfile: NewDropdown("profile-dropdown", "dropdown-item"),
	}
	s.Passwords = make(map[string]*PasswordToggle, len(PasswordFields))
	for _, f := range PasswordFields {
		s.Passwords[f] = NewPasswordToggle(f)
	}
}

// BeginPage starts a fresh page lifecycle when page differs from the current
// one. An empty page keeps the current state.
func (s *State) BeginPage(page string) {
	if page == "" || page == s.Page {
		return
	}
	s.reset()
	s.Page = page
}

func (s *State) Menu(name string) (*Dropdown, error) {
	d, ok := s.Menus[name]
	if !ok {
		return nil, ErrUnknownMenu
	}
	return d, nil
}

func (s *State) Password(field string) (*PasswordToggle, error) {
	p, ok := s.Passwords[field]
	if !ok {
		return nil, ErrUnknownField
	}
	return p, nil
}

// Registry holds chrome state per client in memory. Clients idle for longer
// than the TTL are dropped, and the least recently seen client makes room
// once maxClients is reached.
type Registry struct {
	mu         sync.Mutex
	clients    map[string]*State
	idleTTL    time.Duration
	maxClients int
	lastSweep  time.Time
	now        func() time.Time
}

func NewRegistry(idleTTL time.Duration, maxClients int) *Registry {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	if maxClients <= 0 {
		maxClients = DefaultMaxClients
	}
	return &Registry{
		clients:    make(map[string]*State),
		idleTTL:    idleTTL,
		maxClients: maxClients,
		now:        time.Now,
	}
}

// Do runs fn on the client's state while holding the registry lock.
func (r *Registry) Do(clientID string, fn func(*State) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) >= r.idleTTL/4 {
		r.sweep(now)
	}

	s, ok := r.clients[clientID]
	if !ok {
		if len(r.clients) >= r.maxClients {
			r.evictOldest()
		}
		s = NewState()
		r.clients[clientID] = s
	}
	s.lastSeen = now
	return fn(s)
}

// Len returns the number of clients currently tracked.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

func (r *Registry) sweep(now time.Time) {
	r.lastSweep = now
	for id, s := range r.clients {
		if now.Sub(s.lastSeen) > r.idleTTL {
			s.Loader.Stop()
			delete(r.clients, id)
		}
	}
}

func (r *Registry) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, s := range r.clients {
		if oldestID == "" || s.lastSeen.Before(oldest) {
			oldestID, oldest = id, s.lastSeen
		}
	}
	if s, ok := r.clients[oldestID]; ok {
		s.Loader.Stop()
		delete(r.clients, oldestID)
	}
}
