package server

import "time"

// Configuration of aptsalesd.
//
// To get ServerConfig, use `Unmarshal`, `LoadServerConfig` or `TrySeal(*ServerConfigMarshall)`.
type ServerConfig struct {
	port      int32
	database  string
	secretKey []byte
	auth      *AuthConfig
	pdf       *PDFConfig
}

// Port to listen.
func (c *ServerConfig) Port() int32 {
	return c.port
}

// Connection string for database.
func (c *ServerConfig) Database() string {
	return c.database
}

// Key to sign access tokens and admin sessions.
func (c *ServerConfig) SecretKey() []byte {
	return c.secretKey
}

func (c *ServerConfig) Auth() *AuthConfig {
	return c.auth
}

func (c *ServerConfig) PDF() *PDFConfig {
	return c.pdf
}

type AuthConfig struct {
	accessTokenTTL time.Duration
	sessionTTL     time.Duration
}

// Lifetime of access tokens issued by /api/login/access-token .
func (a *AuthConfig) AccessTokenTTL() time.Duration {
	return a.accessTokenTTL
}

// Lifetime of admin dashboard sessions.
func (a *AuthConfig) SessionTTL() time.Duration {
	return a.sessionTTL
}

// Configuration for printing documents in a headless browser.
type PDFConfig struct {
	browser     string
	controlURL  string
	noSandbox   bool
	concurrency int
	timeout     time.Duration
	idle        time.Duration
}

// Path to the browser binary. If empty, the browser is looked up or downloaded.
func (p *PDFConfig) Browser() string {
	return p.browser
}

// DevTools URL of a running browser. If not empty, aptsalesd attaches it instead of launching one.
func (p *PDFConfig) ControlURL() string {
	return p.controlURL
}

func (p *PDFConfig) NoSandbox() bool {
	return p.noSandbox
}

// How many documents can be generated at once.
func (p *PDFConfig) Concurrency() int {
	return p.concurrency
}

// Time limit for printing a page.
func (p *PDFConfig) Timeout() time.Duration {
	return p.timeout
}

// How long network should be idle before printing a page.
func (p *PDFConfig) Idle() time.Duration {
	return p.idle
}
