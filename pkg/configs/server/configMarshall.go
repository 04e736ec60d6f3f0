package server

import (
	"fmt"
	"time"
)

type Marshalled[S any] interface {
	trySeal(string) S
}

// seal marshalled object.
//
// this function CAN CAUSE PANIC if misconfiguration is found.
func TrySeal[S any](conf Marshalled[S]) S {
	return conf.trySeal("(root)")
}

const (
	DefaultPort           = 8000
	DefaultAccessTokenTTL = 8 * 24 * time.Hour
	DefaultSessionTTL     = 12 * time.Hour
	DefaultConcurrency    = 2
	DefaultPrintTimeout   = 60 * time.Second
	DefaultPrintIdle      = 500 * time.Millisecond
)

// Configuration of aptsalesd.
//
// This type is marshalling value and mutable.
// Consider to use immutable version, `ServerConfig`.
type ServerConfigMarshall struct {
	Port      int32               `yaml:"port,omitempty"`
	Database  string              `yaml:"database"`
	SecretKey string              `yaml:"secretKey"`
	Auth      *AuthConfigMarshall `yaml:"auth,omitempty"`
	PDF       *PDFConfigMarshall  `yaml:"pdf,omitempty"`
}

var _ Marshalled[*ServerConfig] = &ServerConfigMarshall{}

func (s *ServerConfigMarshall) trySeal(path string) *ServerConfig {
	port := s.Port
	if port == 0 {
		port = DefaultPort
	}
	auth := s.Auth
	if auth == nil {
		auth = &AuthConfigMarshall{}
	}
	pdf := s.PDF
	if pdf == nil {
		pdf = &PDFConfigMarshall{}
	}

	return &ServerConfig{
		port:      port,
		database:  required(s.Database, path+".database"),
		secretKey: []byte(required(s.SecretKey, path+".secretKey")),
		auth:      auth.trySeal(path + ".auth"),
		pdf:       pdf.trySeal(path + ".pdf"),
	}
}

type AuthConfigMarshall struct {
	AccessTokenTTL string `yaml:"accessTokenTTL,omitempty"`
	SessionTTL     string `yaml:"sessionTTL,omitempty"`
}

func (a *AuthConfigMarshall) trySeal(path string) *AuthConfig {
	return &AuthConfig{
		accessTokenTTL: duration(a.AccessTokenTTL, DefaultAccessTokenTTL, path+".accessTokenTTL"),
		sessionTTL:     duration(a.SessionTTL, DefaultSessionTTL, path+".sessionTTL"),
	}
}

type PDFConfigMarshall struct {
	Browser     string `yaml:"browser,omitempty"`
	ControlURL  string `yaml:"controlURL,omitempty"`
	NoSandbox   bool   `yaml:"noSandbox,omitempty"`
	Concurrency int    `yaml:"concurrency,omitempty"`
	Timeout     string `yaml:"timeout,omitempty"`
	Idle        string `yaml:"idle,omitempty"`
}

func (p *PDFConfigMarshall) trySeal(path string) *PDFConfig {
	concurrency := p.Concurrency
	if concurrency == 0 {
		concurrency = DefaultConcurrency
	}
	if concurrency < 0 {
		panic(fmt.Errorf("%s.concurrency should be positive: %d", path, concurrency))
	}
	return &PDFConfig{
		browser:     p.Browser,
		controlURL:  p.ControlURL,
		noSandbox:   p.NoSandbox,
		concurrency: concurrency,
		timeout:     duration(p.Timeout, DefaultPrintTimeout, path+".timeout"),
		idle:        duration(p.Idle, DefaultPrintIdle, path+".idle"),
	}
}

func duration(v string, default_ time.Duration, path string) time.Duration {
	if v == "" {
		return default_
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(fmt.Errorf("%s can not be parsed: %w", path, err))
	}
	if d <= 0 {
		panic(fmt.Errorf("%s should be positive: %s", path, v))
	}
	return d
}

func required[T comparable](v T, path string) T {
	if v == *new(T) {
		panic(path + " is required")
	}
	return v
}
