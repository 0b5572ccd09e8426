package datauri

import (
	"fmt"
	"net/http"
	"os"
)

// Sniffer detects the media type of a local file. The caller-supplied type
// is never trusted for file builds; detection owns it.
type Sniffer interface {
	Detect(path string) (string, error)
}

// Fetcher performs a single buffered HTTP GET. Implementations do not
// retry; one failed attempt is one reported failure.
type Fetcher interface {
	Get(url string) (status int, body []byte, contentType string, err error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(url string) (int, []byte, string, error)

func (f FetcherFunc) Get(url string) (int, []byte, string, error) {
	return f(url)
}

// Builder constructs Data values from files and URLs through injected
// collaborators, so the construction logic is testable without real I/O.
type Builder struct {
	sniffer Sniffer
	fetcher Fetcher
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithSniffer sets the media type detector for file builds.
func WithSniffer(s Sniffer) BuilderOption {
	return func(b *Builder) { b.sniffer = s }
}

// WithFetcher sets the HTTP transport for URL builds. Without one, FromURL
// fails with ErrTransportUnavailable.
func WithFetcher(f Fetcher) BuilderOption {
	return func(b *Builder) { b.fetcher = f }
}

// NewBuilder returns a Builder with the given collaborators. A builder
// without a sniffer falls back to extension/content detection via the
// default detector wired by the package-level functions; a builder without
// a fetcher cannot build from URLs.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FromFile reads path and builds a Data value carrying its raw bytes and
// detected media type, with empty parameters. A missing or unreadable file
// fails with FileNotFoundError; detection failures share that path.
func (b *Builder) FromFile(path string, strict bool, mode LengthMode) (*Data, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &FileNotFoundError{Resource: path, Err: err}
	}
	mimeType := ""
	if b.sniffer != nil {
		detected, err := b.sniffer.Detect(path)
		if err != nil {
			return nil, &FileNotFoundError{Resource: path, Err: err}
		}
		mimeType = detected
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileNotFoundError{Resource: path, Err: err}
	}
	return New(data, mimeType, NewParameters(), strict, mode)
}

// FromURL GETs url and builds a Data value from the response body, with
// the declared Content-Type as media type and empty parameters. Any status
// other than 200 means the remote content does not exist for our purposes
// and fails with FileNotFoundError, as does an unreachable host.
func (b *Builder) FromURL(url string, strict bool, mode LengthMode) (*Data, error) {
	if b.fetcher == nil {
		return nil, ErrTransportUnavailable
	}
	status, body, contentType, err := b.fetcher.Get(url)
	if err != nil {
		return nil, &FileNotFoundError{Resource: url, Err: err}
	}
	if status != http.StatusOK {
		return nil, &FileNotFoundError{Resource: url, Err: &remoteStatusError{status: status}}
	}
	return New(body, contentType, NewParameters(), strict, mode)
}

type remoteStatusError struct {
	status int
}

func (e *remoteStatusError) Error() string {
	return fmt.Sprintf("remote returned status %d instead of 200", e.status)
}
