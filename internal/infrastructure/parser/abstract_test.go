package parser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchAbstractFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main><section><div>
			<p>
				We study attention mechanisms at scale.
			</p>
			<p>Second paragraph is ignored.</p>
		</div></section></main></body></html>`))
	}))
	defer server.Close()

	fetcher := NewAbstractFetcher(server.Client(), sourceConfig(server.URL, 10), nil)

	abstract, err := fetcher.FetchAbstract(context.Background(), server.URL+"/papers/0001")
	if err != nil {
		t.Fatalf("FetchAbstract error: %v", err)
	}
	if abstract != "We study attention mechanisms at scale." {
		t.Fatalf("unexpected abstract: %q", abstract)
	}
}

func TestFetchAbstractAbsent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main><section><div><span>no paragraphs</span></div></section></main></body></html>`))
	}))
	defer server.Close()

	fetcher := NewAbstractFetcher(server.Client(), sourceConfig(server.URL, 10), nil)

	abstract, err := fetcher.FetchAbstract(context.Background(), server.URL+"/papers/0002")
	if err != nil {
		t.Fatalf("FetchAbstract error: %v", err)
	}
	if abstract != "" {
		t.Fatalf("expected empty abstract, got %q", abstract)
	}
}

func TestFetchAbstractHTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	fetcher := NewAbstractFetcher(server.Client(), sourceConfig(server.URL, 10), nil)

	if _, err := fetcher.FetchAbstract(context.Background(), server.URL+"/papers/0003"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}
