package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/paperdex/paperdex/internal/paper"
)

const acmPage = `<html><body>
<div class="abstractSection">
  <p>Spanner is Google's scalable, multi-version, globally-distributed, and
  synchronously-replicated database. It is the first system to distribute data
  at global scale and support externally-consistent distributed transactions.</p>
</div>
<div class="tags-widget">
  <a>distributed databases</a>
  <a>transactions</a>
  <a>distributed databases</a>
</div>
<li class="loa__item">
  <span class="loa__author-name">James C. Corbett</span>
  <span class="loa_author_inst">Google, Inc.</span>
</li>
<li class="loa__item">
  <span class="loa__author-name">Jeffrey Dean</span>
</li>
</body></html>`

const ieeePage = `<html><body>
<div class="abstract-text">
  <div class="u-mb-1">Abstract: The Raft consensus algorithm is designed to be
  easy to understand. It is equivalent to Paxos in fault-tolerance and
  performance, but its structure differs from Paxos.</div>
</div>
<ul class="doc-keywords-list">
  <li class="doc-keywords-list-item"><a class="stats-keywords-list-item">consensus</a></li>
  <li class="doc-keywords-list-item"><a class="stats-keywords-list-item">replication</a></li>
</ul>
</body></html>`

// newTestClient routes every request to the test server regardless of the
// requested host, so page URLs can carry real publisher hostnames.
func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	serverURL, err := url.Parse(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	hc := &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyURL(serverURL),
		},
	}
	return NewClient(WithHTTPClient(hc), WithRequestInterval(time.Millisecond))
}

func TestScrapeACM(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(acmPage))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	cand, err := client.Scrape(context.Background(), "http://dl.acm.org/doi/10.1145/2491245")
	if err != nil {
		t.Fatalf("Scrape: %v", err)
	}
	if cand == nil {
		t.Fatal("expected a candidate")
	}
	if cand.Source != "scraper" {
		t.Errorf("source = %q, want scraper", cand.Source)
	}
	if !strings.HasPrefix(cand.Abstract, "Spanner is Google's scalable") {
		t.Errorf("unexpected abstract %q", cand.Abstract)
	}
	if strings.Contains(cand.Abstract, "\n") {
		t.Errorf("abstract whitespace not collapsed: %q", cand.Abstract)
	}
	if len(cand.Keywords) != 2 {
		t.Errorf("duplicate keywords not suppressed: %v", cand.Keywords)
	}
	if len(cand.Authors) != 2 {
		t.Fatalf("expected 2 authors, got %d", len(cand.Authors))
	}
	if got := cand.Authors[0].Affiliations; len(got) != 1 || got[0] != "Google, Inc." {
		t.Errorf("unexpected affiliations %v", got)
	}
	if len(cand.Authors[1].Affiliations) != 0 {
		t.Errorf("author without institution should have no affiliations, got %v", cand.Authors[1].Affiliations)
	}
	if !strings.Contains(gotUA, "Mozilla") {
		t.Errorf("request did not carry a browser user agent: %q", gotUA)
	}
}

func TestScrapeIEEE(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(ieeePage))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	cand, err := client.Scrape(context.Background(), "http://ieeexplore.ieee.org/document/123456")
	if err != nil {
		t.Fatalf("Scrape: %v", err)
	}
	if cand == nil {
		t.Fatal("expected a candidate")
	}
	if strings.HasPrefix(cand.Abstract, "Abstract:") {
		t.Errorf("Abstract: prefix not stripped: %q", cand.Abstract)
	}
	if !strings.HasPrefix(cand.Abstract, "The Raft consensus algorithm") {
		t.Errorf("unexpected abstract %q", cand.Abstract)
	}
	if len(cand.Keywords) != 2 || cand.Keywords[0] != "consensus" {
		t.Errorf("unexpected keywords %v", cand.Keywords)
	}
}

func TestScrapeUnsupportedHost(t *testing.T) {
	client := NewClient(WithRequestInterval(time.Millisecond))
	cand, err := client.Scrape(context.Background(), "https://example.com/paper/1")
	if err != nil {
		t.Fatalf("Scrape: %v", err)
	}
	if cand != nil {
		t.Errorf("unsupported host should yield nil candidate, got %+v", cand)
	}
}

func TestScrapeShortAbstractIgnored(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="abstractSection"><p>Too short.</p></div></body></html>`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	cand, err := client.Scrape(context.Background(), "http://dl.acm.org/doi/10.1145/1")
	if err != nil {
		t.Fatalf("Scrape: %v", err)
	}
	if cand != nil {
		t.Errorf("page with no usable fields should yield nil candidate, got %+v", cand)
	}
}

func TestSourceLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(acmPage))
	}))
	defer server.Close()

	src := NewSource(newTestClient(t, server))
	if src.Name() != "scraper" {
		t.Errorf("Name() = %q", src.Name())
	}

	cand, err := src.Lookup(context.Background(), paper.Paper{URL: "http://dl.acm.org/doi/10.1145/2491245"})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if cand == nil || cand.Abstract == "" {
		t.Error("expected candidate with abstract")
	}

	cand, err = src.Lookup(context.Background(), paper.Paper{})
	if err != nil || cand != nil {
		t.Errorf("paper without URL: got (%+v, %v), want (nil, nil)", cand, err)
	}
}
