// Package session keeps per-browser state on the server. The browser only
// holds a signed session id cookie; the payload lives in the store.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"

	"github.com/abhisek/toeiz/internal/questiongen"
	"github.com/abhisek/toeiz/internal/store"
)

const (
	DefaultCookieName = "toeiz_session"
	DefaultMaxAge     = 30 * 24 * time.Hour

	contextKey = "toeiz.session"
)

// Flash categories used by the templates.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Data is the persisted payload of a session.
type Data struct {
	UserID  int64                    `json:"user_id,omitempty"`
	Tests   questiongen.SessionState `json:"tests"`
	Flashes []Flash                  `json:"flashes,omitempty"`
}

// Session is the state of one browser session for the current request.
type Session struct {
	ID string
	Data
}

// LoggedIn reports whether a user is attached to the session.
func (s *Session) LoggedIn() bool { return s.UserID != 0 }

// AddFlash queues a message for the next rendered page.
func (s *Session) AddFlash(category, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.Flashes = append(s.Flashes, Flash{Category: category, Message: msg})
}

// PopFlashes returns and clears the queued messages.
func (s *Session) PopFlashes() []Flash {
	f := s.Flashes
	s.Flashes = nil
	return f
}

// Options configures a Manager.
type Options struct {
	CookieName string
	MaxAge     time.Duration
	Secure     bool

	// Secret signs the session id cookie. Required.
	Secret string

	Logger *slog.Logger
}

// Manager loads and saves sessions through a store.SessionRepo.
type Manager struct {
	repo   store.SessionRepo
	opts   Options
	codec  *securecookie.SecureCookie
	logger *slog.Logger
	now    func() time.Time
}

// NewManager creates a Manager. It fails when no secret is configured.
func NewManager(repo store.SessionRepo, opts Options) (*Manager, error) {
	if opts.Secret == "" {
		return nil, errors.New("session: secret key is required")
	}
	if opts.CookieName == "" {
		opts.CookieName = DefaultCookieName
	}
	if opts.MaxAge <= 0 {
		opts.MaxAge = DefaultMaxAge
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	codec := securecookie.New([]byte(opts.Secret), nil).MaxAge(int(opts.MaxAge.Seconds()))
	codec.SetSerializer(securecookie.JSONEncoder{})
	return &Manager{repo: repo, opts: opts, codec: codec, logger: logger, now: time.Now}, nil
}

// Load returns the session named by the request cookie, or a new empty
// session when the cookie is missing, forged or expired.
func (m *Manager) Load(ctx context.Context, r *http.Request) (*Session, error) {
	c, err := r.Cookie(m.opts.CookieName)
	if err != nil {
		return m.fresh(), nil
	}
	var id string
	if err := m.codec.Decode(m.opts.CookieName, c.Value, &id); err != nil || id == "" {
		return m.fresh(), nil
	}

	raw, err := m.repo.Load(ctx, id, m.now())
	if errors.Is(err, store.ErrNotFound) {
		return m.fresh(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	s := &Session{ID: id}
	if err := json.Unmarshal(raw, &s.Data); err != nil {
		m.logger.Warn("discarding unreadable session", "error", err)
		return m.fresh(), nil
	}
	return s, nil
}

// Save persists the session and refreshes its expiry.
func (m *Manager) Save(ctx context.Context, s *Session) error {
	raw, err := json.Marshal(s.Data)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := m.repo.Save(ctx, s.ID, raw, m.now().Add(m.opts.MaxAge)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Prune deletes expired sessions.
func (m *Manager) Prune(ctx context.Context) (int64, error) {
	return m.repo.Prune(ctx, m.now())
}

// Cookie returns the cookie carrying the signed id of s.
func (m *Manager) Cookie(s *Session) (*http.Cookie, error) {
	value, err := m.codec.Encode(m.opts.CookieName, s.ID)
	if err != nil {
		return nil, fmt.Errorf("encode session cookie: %w", err)
	}
	return &http.Cookie{
		Name:     m.opts.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(m.opts.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Middleware attaches the session to the gin context and saves it once
// the handler chain returns.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := m.Load(c.Request.Context(), c.Request)
		if err != nil {
			m.logger.ErrorContext(c.Request.Context(), "session load failed", "error", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		cookie, err := m.Cookie(s)
		if err != nil {
			m.logger.ErrorContext(c.Request.Context(), "session cookie failed", "error", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		http.SetCookie(c.Writer, cookie)
		c.Set(contextKey, s)
		c.Next()

		if err := m.Save(c.Request.Context(), s); err != nil {
			m.logger.ErrorContext(c.Request.Context(), "session save failed", "session", s.ID, "error", err)
		}
	}
}

// Get returns the session attached by Middleware.
func Get(c *gin.Context) *Session {
	v, ok := c.Get(contextKey)
	if !ok {
		panic("session: middleware not installed")
	}
	return v.(*Session)
}

func (m *Manager) fresh() *Session {
	return &Session{ID: uuid.New().String()}
}
