package grooveshark

import (
	"net/http"
	"sync"
	"time"
)

// Config holds client configuration.
type Config struct {
	APIKey     string         // Required: application key, also used to sign requests
	APISecret  string         // Required: shared secret issued with the key
	HTTPClient *http.Client   // Optional: HTTP client (defaults to one built from Timeout)
	Timeout    time.Duration  // Optional: request timeout when HTTPClient is nil (defaults to 30s)
	BaseURL    string         // Optional: service endpoint (defaults to the public endpoint, used for testing)
	UserAgent  string         // Optional: User-Agent header
	Logger     Logger         // Optional: Logger interface for debug logging
	OnCall     func(CallInfo) // Optional: invoked after every call with its outcome
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// CallInfo describes a finished call. StatusCode is zero when the
// request never produced an HTTP response.
type CallInfo struct {
	Method     string
	StatusCode int
	Duration   time.Duration
	Err        error
}

// Client is the main entry point for service operations.
//
// A Client is safe for concurrent use. The session token is read once per
// call, so a call racing with Authenticate or Logout carries whichever token
// it observed.
type Client struct {
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     Logger
	onCall     func(CallInfo)

	mu        sync.RWMutex
	sessionID string

	auth      *AuthService
	library   *LibraryService
	playlists *PlaylistService
	catalog   *CatalogService
}

const (
	// DefaultBaseURL is the public service endpoint.
	DefaultBaseURL = "https://api.grooveshark.com/ws3.php"

	// DefaultTimeout bounds a request when no HTTP client is supplied.
	DefaultTimeout = 30 * time.Second

	defaultUserAgent = "sharkfin/1.0"
)

// NewClient creates a new client. It performs no network I/O and starts
// without a session.
//
// Returns an error if required configuration (APIKey, APISecret) is missing.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.APISecret == "" {
		return nil, ErrMissingAPISecret
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	c := &Client{
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		logger:     cfg.Logger,
		onCall:     cfg.OnCall,
	}

	c.auth = &AuthService{client: c}
	c.library = &LibraryService{client: c}
	c.playlists = &PlaylistService{client: c}
	c.catalog = &CatalogService{client: c}

	return c, nil
}

// Auth returns the session and authentication service.
func (c *Client) Auth() *AuthService {
	return c.auth
}

// Library returns the user library and favorites service.
func (c *Client) Library() *LibraryService {
	return c.library
}

// Playlists returns the playlist management service.
func (c *Client) Playlists() *PlaylistService {
	return c.playlists
}

// Catalog returns the song, album and artist lookup service.
func (c *Client) Catalog() *CatalogService {
	return c.catalog
}

// SessionID returns the current session token, or "" when there is none.
func (c *Client) SessionID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionID
}

// SetSessionID replaces the session token sent with every request.
// An empty string clears it.
func (c *Client) SetSessionID(id string) {
	c.mu.Lock()
	c.sessionID = id
	c.mu.Unlock()
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
