package product

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	productEntity "storefront.GO/model/entity/product"
)

// Source yields the product list a page is built from.
type Source interface {
	FetchProducts(ctx context.Context) ([]productEntity.Product, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context) ([]productEntity.Product, error)

func (f SourceFunc) FetchProducts(ctx context.Context) ([]productEntity.Product, error) {
	return f(ctx)
}

// HTTPSource reads the product list with a single GET. It never retries and
// sets no timeout of its own; cancel ctx to abandon the request.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func NewHTTPSource(rawURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{URL: rawURL, Client: client}
}

func (s *HTTPSource) FetchProducts(ctx context.Context) ([]productEntity.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", s.URL, err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("get %s: unexpected status %d", s.URL, resp.StatusCode)
	}
	products, err := DecodeProducts(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.URL, err)
	}
	return products, nil
}

// ResolveURL resolves ref against base the way a browser resolves a relative
// fetch from the page at base. An absolute ref is returned unchanged.
func ResolveURL(base, ref string) (string, error) {
	r, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parse product data url %q: %w", ref, err)
	}
	if r.IsAbs() {
		return r.String(), nil
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse page url %q: %w", base, err)
	}
	return b.ResolveReference(r).String(), nil
}
