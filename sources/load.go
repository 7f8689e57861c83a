package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"unicode/utf8"

	"github.com/reusee/nyx/logs"
	"github.com/reusee/nyx/nets"
	"github.com/reusee/nyx/nyxlang"
)

var ErrNotText = errors.New("source is not valid UTF-8 text")

// maxSize bounds remote and piped input.
const maxSize = 16 << 20

// Load reads a source by name: "" or "-" is stdin, http(s) URLs are fetched, anything else is a file path.
type Load func(ctx context.Context, name string) (*nyxlang.Source, error)

func (Module) Load(
	stdin Stdin,
	client nets.HTTPClient,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, name string) (*nyxlang.Source, error) {
		var content []byte
		var err error

		switch {

		case name == "" || name == "-":
			name = "<stdin>"
			content, err = io.ReadAll(io.LimitReader(stdin, maxSize+1))

		case isURL(name):
			content, err = fetch(ctx, client, name)

		default:
			content, err = os.ReadFile(name)

		}
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}

		if len(content) > maxSize {
			return nil, fmt.Errorf("load %s: larger than %d bytes", name, maxSize)
		}
		if !utf8.Valid(content) {
			return nil, fmt.Errorf("load %s: %w", name, ErrNotText)
		}

		logger.DebugContext(ctx, "source loaded",
			"name", name,
			"bytes", len(content),
		)
		return nyxlang.NewSource(name, string(content)), nil
	}
}

func isURL(name string) bool {
	u, err := url.Parse(name)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func fetch(ctx context.Context, client nets.HTTPClient, name string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, name, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxSize+1))
}
