package aceproject

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"sort"
	"time"

	"acetime/internal/dump"
)

// DefaultBaseURL is the public AceProject API endpoint.
const DefaultBaseURL = "http://api.aceproject.com/"

// Token is the opaque session identifier returned by login. It is required
// on every subsequent request and held only in memory for the run.
type Token string

// Options configures a Client. Flags like dry-run are threaded through here
// instead of living in package-level state.
type Options struct {
	// Logger defaults to slog.Default.
	Logger *slog.Logger
	// HTTPClient defaults to a client with a 30s timeout.
	HTTPClient *http.Client
	// Dump, when set, persists every raw response before parsing.
	Dump *dump.Writer
	// DryRun suppresses mutating calls; the parameters that would have been
	// sent are printed to Out instead.
	DryRun bool
	// Out receives dry-run output. Defaults to os.Stdout.
	Out io.Writer
}

// Client talks to the AceProject XML-over-HTTP API. All methods issue one
// GET per call and treat every remote failure as fatal; there is no retry.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
	dump    *dump.Writer
	dryRun  bool
	out     io.Writer
}

// New creates a Client for the given base URL ("" selects the public API).
func New(baseURL string, opts Options) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		http:    opts.HTTPClient,
		log:     opts.Logger,
		dump:    opts.Dump,
		dryRun:  opts.DryRun,
		out:     opts.Out,
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: 30 * time.Second}
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	if c.out == nil {
		c.out = os.Stdout
	}
	return c
}

// Login exchanges credentials for a session token. Any failure during
// login, transport failures included, surfaces as *AuthError and the
// caller must terminate the run.
func (c *Client) Login(ctx context.Context, account, username, password string) (Token, error) {
	params := url.Values{
		"accountid":   {account},
		"username":    {username},
		"password":    {password},
		"browserinfo": {"NULL"},
		"language":    {"NULL"},
	}

	rows, err := c.Do(ctx, "login", "", params)
	if err != nil {
		return "", &AuthError{Account: account, Err: err}
	}
	guid, ok := findField(rows, "GUID")
	if !ok || guid == "" {
		return "", &AuthError{Account: account}
	}
	return Token(guid), nil
}

// Do issues one GET for the given API function, appending the boilerplate
// parameters the service requires (function selector, session token, and
// response-format marker), and returns the parsed result rows. A response
// carrying an embedded error description yields *RemoteError.
func (c *Client) Do(ctx context.Context, fct string, token Token, params url.Values) ([]Row, error) {
	query := url.Values{}
	for k, vs := range params {
		query[k] = vs
	}
	query.Set("fct", fct)
	if token != "" {
		query.Set("guid", string(token))
	}
	if query.Get("format") == "" {
		query.Set("format", "ds")
	}

	reqURL := c.baseURL + "?" + query.Encode()
	c.log.Debug("request", "fct", fct, "url", redact(reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &TransportError{Fct: fct, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Fct: fct, Err: err}
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, &TransportError{Fct: fct, Err: fmt.Errorf("reading response body: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Fct: fct, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
	c.log.Debug("response", "fct", fct, "bytes", len(body))

	c.writeDump(fct, body)

	rows, err := parseRows(body)
	if err != nil {
		return nil, &TransportError{Fct: fct, Err: err}
	}
	if err := remoteErrorIn(fct, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// writeDump persists the raw body when dumping is enabled. Dump failures
// are logged and never fail the primary call.
func (c *Client) writeDump(fct string, body []byte) {
	if c.dump == nil {
		return
	}
	path, err := c.dump.Write(fct, body)
	if err != nil {
		c.log.Warn("could not write response dump", "fct", fct, "error", err)
		return
	}
	c.log.Debug("response dumped", "fct", fct, "path", path)
}

// printParams echoes a parameter set in the dry-run listing format.
func (c *Client) printParams(fct string, params url.Values) {
	fmt.Fprintln(c.out, "Parameters that would be sent:")
	keys := make([]string, 0, len(params)+1)
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintf(c.out, " - %-16s %s\n", "fct:", fct)
	for _, k := range keys {
		fmt.Fprintf(c.out, " - %-16s %s\n", k+":", params.Get(k))
	}
}

// redact strips the password parameter from a URL before logging.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	if q.Get("password") != "" {
		q.Set("password", "********")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
