package nets

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/nyx/configs"
	"github.com/reusee/nyx/modes"
)

func TestHTTPClientDialsLocalDirectly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "print(1)")
	}))
	defer server.Close()

	dscope.New(
		modes.ForProduction(),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.Loader{}
		},
		func() ProxyAddr {
			// unreachable; must not be used for loopback
			return "socks5://127.0.0.1:1"
		},
	).Call(func(
		client HTTPClient,
	) {
		resp, err := client.Get(server.URL)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		if string(body) != "print(1)" {
			t.Fatalf("got %q", body)
		}
	})
}

func TestProxyAddrInDevelopment(t *testing.T) {
	t.Setenv("ALL_PROXY", "socks5://proxy:1080")
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.Loader{}
		},
	).Call(func(
		addr ProxyAddr,
	) {
		if addr != "" {
			t.Fatalf("got %q", addr)
		}
	})
}

func TestProxyAddrFromEnv(t *testing.T) {
	t.Setenv("ALL_PROXY", "socks://proxy:1080")
	dscope.New(
		modes.ForProduction(),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.Loader{}
		},
	).Call(func(
		getURL GetProxyURL,
	) {
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u.Scheme != "socks5" || u.Host != "proxy:1080" {
			t.Fatalf("got %v", u)
		}
	})
}
