package feedtable

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"os"
	"time"

	"tablesync/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/feedtable")

// Client fetches the feed page holding the table to scrape.
type Client struct {
	Http *resty.Client
}

func NewClient() (*Client, error) {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/feedtable/http")

	return &Client{Http: client}, nil
}

// FetchPage downloads the raw markup from the configured source url.
func (c *Client) FetchPage(ctx context.Context, url string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "client:FetchPage")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch feed page")
		return nil, err
	}
	if res.IsError() {
		span.SetStatus(codes.Error, res.Status())
		return nil, fmt.Errorf("fetch %s: %s", url, res.Status())
	}

	return res.Body(), nil
}

// ReadPage loads pre-fetched markup from disk, used instead of
// FetchPage when the caller supplies a document path.
func ReadPage(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source document %s: %w", path, err)
	}
	return raw, nil
}
