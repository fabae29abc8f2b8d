package remote

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/oauth2"

	"github.com/keboola/remote-config-modifier/internal/pkg/encoding/json"
	"github.com/keboola/remote-config-modifier/internal/pkg/encoding/json/schema"
	"github.com/keboola/remote-config-modifier/internal/pkg/log"
	"github.com/keboola/remote-config-modifier/internal/pkg/model"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

const (
	DefaultHost      = "https://firebaseremoteconfig.googleapis.com"
	documentPath     = "/v1/projects/{projectNumber}/remoteConfig"
	RequestTimeout   = 45 * time.Second
	HTTPTimeout      = 30 * time.Second
	IdleConnTimeout  = 90 * time.Second
	KeepAlive        = 30 * time.Second
	MaxIdleConns     = 16
	RetryCount       = 5
	RetryWaitTime    = 100 * time.Millisecond
	RetryWaitTimeMax = 3 * time.Second
)

type Client struct {
	logger      log.Logger
	tokenSource oauth2.TokenSource
	http        *resty.Client
}

type config struct {
	host          string
	userAgent     string
	retryCount    int
	retryWait     time.Duration
	retryWaitMax  time.Duration
	httpTransport http.RoundTripper
	tracer        trace.TracerProvider
}

type Option func(c *config)

func WithHost(host string) Option {
	return func(c *config) {
		if host != "" {
			c.host = host
		}
	}
}

func WithUserAgent(v string) Option {
	return func(c *config) {
		c.userAgent = v
	}
}

func WithRetry(count int, wait, waitMax time.Duration) Option {
	return func(c *config) {
		c.retryCount = count
		c.retryWait = wait
		c.retryWaitMax = waitMax
	}
}

func WithTransport(transport http.RoundTripper) Option {
	return func(c *config) {
		c.httpTransport = transport
	}
}

// WithTracerProvider enables a client span for each HTTP request.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracer = tp
	}
}

func NewClient(logger log.Logger, tokenSource oauth2.TokenSource, opts ...Option) *Client {
	cfg := config{
		host:         DefaultHost,
		userAgent:    "rcm",
		retryCount:   RetryCount,
		retryWait:    RetryWaitTime,
		retryWaitMax: RetryWaitTimeMax,
		tracer:       noop.NewTracerProvider(),
	}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.httpTransport == nil {
		cfg.httpTransport = createTransport()
	}

	c := &Client{logger: logger.WithComponent("http"), tokenSource: tokenSource}
	c.http = resty.New().
		SetBaseURL(cfg.host).
		SetHeader("User-Agent", cfg.userAgent).
		SetTimeout(RequestTimeout).
		SetTransport(otelhttp.NewTransport(
			cfg.httpTransport,
			otelhttp.WithTracerProvider(cfg.tracer),
			otelhttp.WithSpanNameFormatter(func(_ string, req *http.Request) string {
				return "rcm.remote.http." + strings.ToLower(req.Method)
			}),
		)).
		SetJSONMarshaler(func(v any) ([]byte, error) { return json.Encode(v, false) }).
		SetJSONUnmarshaler(json.Decode).
		SetRetryCount(cfg.retryCount).
		SetRetryWaitTime(cfg.retryWait).
		SetRetryMaxWaitTime(cfg.retryWaitMax).
		SetRetryAfter(retryAfter(cfg.retryWait, cfg.retryWaitMax)).
		AddRetryCondition(func(response *resty.Response, err error) bool {
			if response == nil || response.RawResponse == nil {
				return err != nil
			}
			switch response.StatusCode() {
			case
				http.StatusRequestTimeout,
				http.StatusTooManyRequests,
				http.StatusInternalServerError,
				http.StatusBadGateway,
				http.StatusServiceUnavailable,
				http.StatusGatewayTimeout:
				return true
			default:
				return false
			}
		})
	c.setupHooks()
	return c
}

func (c *Client) Fetch(ctx context.Context, p project.Project) (*model.RemoteConfig, model.VersionToken, error) {
	cfg := &model.RemoteConfig{}
	res, err := c.http.R().
		SetContext(ctx).
		SetPathParam("projectNumber", p.Number).
		SetResult(cfg).
		ForceContentType("application/json").
		Get(documentPath)
	if err != nil {
		return nil, "", errors.PrefixErrorf(err, `cannot fetch remote config of the project "%s"`, p.Name)
	}
	if !res.IsSuccess() {
		return nil, "", errors.PrefixErrorf(newHTTPError(res), `cannot fetch remote config of the project "%s"`, p.Name)
	}

	etag := res.Header().Get("ETag")
	if etag == "" {
		return nil, "", errors.Errorf(`remote config of the project "%s" has no ETag header`, p.Name)
	}

	return cfg, model.VersionToken(etag), nil
}

func (c *Client) Write(ctx context.Context, p project.Project, cfg *model.RemoteConfig, token model.VersionToken) error {
	if err := schema.ValidateDocument(cfg); err != nil {
		return errors.PrefixErrorf(err, `remote config of the project "%s" is invalid`, p.Name)
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetPathParam("projectNumber", p.Number).
		SetHeader("Content-Type", "application/json; UTF-8").
		SetHeader("If-Match", string(token)).
		SetBody(cfg).
		Put(documentPath)
	if err != nil {
		return errors.PrefixErrorf(err, `cannot write remote config of the project "%s"`, p.Name)
	}

	switch res.StatusCode() {
	case http.StatusConflict, http.StatusPreconditionFailed:
		return VersionConflictError{Project: p.Name}
	}
	if !res.IsSuccess() {
		return errors.PrefixErrorf(newHTTPError(res), `cannot write remote config of the project "%s"`, p.Name)
	}
	return nil
}

func (c *Client) setupHooks() {
	c.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if c.tokenSource == nil {
			return nil
		}
		token, err := c.tokenSource.Token()
		if err != nil {
			return errors.PrefixError(err, "cannot get access token")
		}
		req.SetAuthToken(token.AccessToken)
		return nil
	})
	c.http.AddRetryHook(func(res *resty.Response, err error) {
		if res == nil || res.Request == nil {
			return
		}
		c.logger.Warnf(res.Request.Context(), "%s | Retrying %dx ..", responseToLog(res, err), res.Request.Attempt)
	})
	c.http.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		c.logger.Debug(res.Request.Context(), responseToLog(res, nil))
		return nil
	})
	c.http.OnError(func(req *resty.Request, err error) {
		c.logger.Debugf(req.Context(), "%s %s | %s", req.Method, req.URL, err)
	})
}

// retryAfter computes the wait time of the attempt by the exponential backoff without randomization.
func retryAfter(initial, maxWait time.Duration) resty.RetryAfterFunc {
	return func(_ *resty.Client, res *resty.Response) (time.Duration, error) {
		b := backoff.NewExponentialBackOff(
			backoff.WithInitialInterval(initial),
			backoff.WithMaxInterval(maxWait),
			backoff.WithRandomizationFactor(0),
			backoff.WithMaxElapsedTime(0),
		)
		wait := b.NextBackOff()
		if res != nil && res.Request != nil {
			for i := 1; i < res.Request.Attempt; i++ {
				wait = b.NextBackOff()
			}
		}
		return wait, nil
	}
}

type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func newHTTPError(res *resty.Response) HTTPError {
	out := HTTPError{Method: res.Request.Method, URL: res.Request.URL, StatusCode: res.StatusCode()}
	body := apiErrorBody{}
	if err := json.Decode(res.Body(), &body); err == nil {
		out.Message = body.Error.Message
	}
	return out
}

func responseToLog(res *resty.Response, err error) string {
	req := res.Request
	if err != nil {
		return fmt.Sprintf("%s %s | %s", req.Method, req.URL, err)
	}
	return fmt.Sprintf("%s %s | %d | %s", req.Method, req.URL, res.StatusCode(), res.Time())
}

func createTransport() *http.Transport {
	dialer := &net.Dialer{
		Timeout:   HTTPTimeout,
		KeepAlive: KeepAlive,
	}
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          MaxIdleConns,
		IdleConnTimeout:       IdleConnTimeout,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConnsPerHost:   MaxIdleConns,
	}
}
