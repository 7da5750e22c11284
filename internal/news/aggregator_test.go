package news

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"
)

type stubSource struct {
	name      string
	headlines []string
	err       error
	calls     int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(context.Context, string, string) ([]string, error) {
	s.calls++
	return s.headlines, s.err
}

func newTestAggregator(sources ...Source) *Aggregator {
	return &Aggregator{Sources: sources, MaxHeadlines: 10}
}

func TestHeadlines_DeduplicatesPreservingOrder(t *testing.T) {
	a := newTestAggregator(
		&stubSource{name: "one", headlines: []string{"Apple shares rally on earnings", "Apple plans new factory"}},
		&stubSource{name: "two", headlines: []string{"Apple plans new factory", "Analysts raise Apple target"}},
	)
	got := a.Headlines(context.Background(), "Apple Inc.", "AAPL")
	want := []string{
		"Apple shares rally on earnings",
		"Apple plans new factory",
		"Analysts raise Apple target",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestHeadlines_CapStopsFurtherSources(t *testing.T) {
	first := &stubSource{name: "one", headlines: []string{"h1", "h2", "h3"}}
	second := &stubSource{name: "two", headlines: []string{"h4"}}
	a := newTestAggregator(first, second)
	a.MaxHeadlines = 2

	got := a.Headlines(context.Background(), "X", "X")
	if len(got) != 2 {
		t.Fatalf("cap not enforced: %v", got)
	}
	if second.calls != 0 {
		t.Error("second source must not be consulted once the cap is reached")
	}
}

func TestHeadlines_SourceErrorDegradesToEmpty(t *testing.T) {
	a := newTestAggregator(
		&stubSource{name: "broken", err: errors.New("boom")},
		&stubSource{name: "ok", headlines: []string{"Surviving headline here"}},
	)
	got := a.Headlines(context.Background(), "X", "X")
	if len(got) != 1 || got[0] != "Surviving headline here" {
		t.Errorf("error source should be skipped: %v", got)
	}
}

func TestHeadlines_AllSourcesFail(t *testing.T) {
	a := newTestAggregator(
		&stubSource{name: "a", err: errors.New("down")},
		&stubSource{name: "b", err: errors.New("down")},
	)
	got := a.Headlines(context.Background(), "X", "X")
	if len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
}

func TestCleanHeadline(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Breaking:  Apple  hits record", "Apple hits record"},
		{"NEWS: markets open higher", "markets open higher"},
		{"  spaced   out   title ", "spaced out title"},
		{"plain title", "plain title"},
	}
	for _, tt := range tests {
		if got := cleanHeadline(tt.in); got != tt.want {
			t.Errorf("cleanHeadline(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGoogleNewsSource_ParsesRSS(t *testing.T) {
	rss := `<?xml version="1.0"?>
<rss version="2.0"><channel>
<item><title>Reliance Industries posts strong quarterly results - Mint</title></item>
<item><title>short</title></item>
<item><title>Reliance expands retail arm with new acquisition - ET</title></item>
</channel></rss>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rss))
	}))
	defer srv.Close()

	src := NewGoogleNewsSource("", 5*time.Second, 5)
	// Point the request at the test server by swapping the transport.
	src.Client.Transport = rewriteTransport{target: srv.URL}

	got, err := src.Fetch(context.Background(), "Reliance Industries", "RELIANCE.NS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 headlines (short one filtered), got %v", got)
	}
	if !strings.Contains(got[0], "quarterly results") {
		t.Errorf("unexpected first headline: %q", got[0])
	}
}

// rewriteTransport sends every request to the test server regardless of
// the original host.
type rewriteTransport struct {
	target string
}

func (rt rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	nr := req.Clone(req.Context())
	nr.URL.Scheme = "http"
	nr.URL.Host = strings.TrimPrefix(rt.target, "http://")
	return http.DefaultTransport.RoundTrip(nr)
}
