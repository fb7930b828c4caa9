package auth

import (
	"context"
	"errors"
	"path"
	"strings"
	"time"

	"github.com/central-adventures/trips/internal/config"
	"github.com/central-adventures/trips/internal/models"
	"github.com/central-adventures/trips/internal/storage"
)

const (
	LoginPage        = "login.html"
	HomePage         = "index.html"
	DestinationsPage = "destinations.html"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// Simulator gates pages behind the local-storage auth flag and handles
// login, signup and logout against the single stored user record.
// It performs no real authentication.
type Simulator struct {
	protected     map[string]struct{}
	redirectDelay time.Duration
}

func NewSimulator(cfg *config.Config) *Simulator {
	s := &Simulator{
		protected:     make(map[string]struct{}, len(cfg.ProtectedPages)),
		redirectDelay: cfg.LoginRedirectDelay,
	}
	for _, p := range cfg.ProtectedPages {
		s.protected[p] = struct{}{}
	}
	return s
}

// PageName is the final segment of a URL path.
func PageName(urlPath string) string {
	if urlPath == "" || strings.HasSuffix(urlPath, "/") {
		return ""
	}
	return path.Base(urlPath)
}

func (s *Simulator) IsProtected(page string) bool {
	_, ok := s.protected[page]
	return ok
}

// Guard returns the page to redirect to when urlPath may not be viewed, or "".
func (s *Simulator) Guard(ctx context.Context, store storage.LocalStorage, urlPath string) (string, error) {
	if !s.IsProtected(PageName(urlPath)) {
		return "", nil
	}
	loggedIn, err := LoggedIn(ctx, store)
	if err != nil {
		return "", err
	}
	if loggedIn {
		return "", nil
	}
	return LoginPage, nil
}

func (s *Simulator) Login(ctx context.Context, store storage.LocalStorage, email, password string) (models.Notice, error) {
	user, err := LoadUser(ctx, store)
	if err != nil {
		return models.Notice{}, err
	}

	if user == nil || user.Email != email || user.Password != password {
		return models.Notice{
			Kind:    models.NoticeError,
			Message: "Invalid email or password. Please check your credentials and try again.",
		}, ErrInvalidCredentials
	}

	if err := store.SetItem(ctx, KeyLoggedIn, "true"); err != nil {
		return models.Notice{}, err
	}

	return models.Notice{
		Kind:            models.NoticeSuccess,
		Message:         "Login successful! Redirecting...",
		Redirect:        DestinationsPage,
		RedirectAfterMs: s.redirectDelay.Milliseconds(),
	}, nil
}

// SignupForm carries the signup form controls by element id.
type SignupForm struct {
	FirstName       string `json:"firstName" required:"false"`
	LastName        string `json:"lastName" required:"false"`
	Username        string `json:"username" required:"false"`
	Age             string `json:"age" required:"false"`
	Email           string `json:"email" required:"false"`
	Password        string `json:"password" required:"false"`
	ConfirmPassword string `json:"confirmPassword" required:"false"`
	County          string `json:"county" required:"false"`
	Constituency    string `json:"constituency" required:"false"`
	Bio             string `json:"bio" required:"false"`
	ContactInfo     string `json:"contactInfo" required:"false"`
	ImagePreview    string `json:"imagePreview" required:"false" doc:"Profile picture preview markup"`
}

func (s *Simulator) Signup(ctx context.Context, store storage.LocalStorage, form SignupForm) (models.Notice, error) {
	if form.Password != form.ConfirmPassword {
		return models.Notice{
			Kind:    models.NoticeError,
			Message: "Passwords do not match! Please make sure both password fields are identical.",
		}, ErrPasswordMismatch
	}

	user := models.UserRecord{
		FirstName:      form.FirstName,
		LastName:       form.LastName,
		Username:       form.Username,
		Age:            form.Age,
		Email:          form.Email,
		Password:       form.Password,
		County:         form.County,
		Constituency:   form.Constituency,
		Bio:            form.Bio,
		ContactInfo:    form.ContactInfo,
		ProfilePicture: form.ImagePreview,
	}
	if err := SaveUser(ctx, store, user); err != nil {
		return models.Notice{}, err
	}
	if err := store.SetItem(ctx, KeyLoggedIn, "true"); err != nil {
		return models.Notice{}, err
	}

	return models.Notice{
		Kind:        models.NoticeSuccess,
		Title:       "Welcome to Central Adventures!",
		Message:     "Your account has been created successfully. Get ready to explore Kenya's amazing destinations!",
		ConfirmText: "Let's Go!",
		Redirect:    DestinationsPage,
	}, nil
}

func (s *Simulator) Logout(ctx context.Context, store storage.LocalStorage) (models.Notice, error) {
	if err := store.SetItem(ctx, KeyLoggedIn, "false"); err != nil {
		return models.Notice{}, err
	}
	return models.Notice{Kind: models.NoticeSuccess, Redirect: HomePage}, nil
}

// MatchIndicator is the live password confirmation hint.
type MatchIndicator struct {
	Text  string `json:"text"`
	Class string `json:"class"`
}

func PasswordMatch(password, confirm string) MatchIndicator {
	switch {
	case confirm == "":
		return MatchIndicator{Text: "", Class: "password-match-indicator"}
	case password == confirm:
		return MatchIndicator{Text: "✓ Passwords match", Class: "password-match-indicator match"}
	default:
		return MatchIndicator{Text: "✗ Passwords do not match", Class: "password-match-indicator no-match"}
	}
}
