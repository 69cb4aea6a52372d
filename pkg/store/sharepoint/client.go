// Package sharepoint moves generated documents to and from the remote
// document store. The rendering core never calls it directly; callers wire
// renderer output into it.
package sharepoint

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	defaultAuthorityURL = "https://accounts.accesscontrol.windows.net"
	// sharepointPrincipal is the well-known service principal the access
	// token is scoped to.
	sharepointPrincipal = "00000003-0000-0ff1-ce00-000000000000"
)

type Config struct {
	ClientID     string
	ClientSecret string
	TenantID     string
	Tenant       string
	SiteName     string

	// AuthorityURL and BaseURL override the remote endpoints; tests point
	// them at a local server.
	AuthorityURL string
	BaseURL      string
}

// TransferError reports a non-2xx response from the store, naming the
// operation, status code and response body.
type TransferError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("failed to %s: status code %d, response body: %s", e.Op, e.StatusCode, e.Body)
}

// Client talks to one site of the document store. The bearer token is
// acquired once at construction via a client-credential exchange.
type Client struct {
	httpClient *http.Client
	siteURL    string
	authHeader string
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	logger := zerolog.Ctx(ctx)

	authority := cfg.AuthorityURL
	if authority == "" {
		authority = defaultAuthorityURL
	}
	base := cfg.BaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.sharepoint.com", cfg.Tenant)
	}

	tokenURL := fmt.Sprintf("%s/%s/tokens/OAuth/2", authority, cfg.TenantID)
	cc := clientcredentials.Config{
		ClientID:     fmt.Sprintf("%s@%s", cfg.ClientID, cfg.TenantID),
		ClientSecret: cfg.ClientSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
		EndpointParams: url.Values{
			"resource": {fmt.Sprintf("%s/%s.sharepoint.com@%s", sharepointPrincipal, cfg.Tenant, cfg.TenantID)},
		},
	}

	logger.Info().Str("endpoint", tokenURL).Msg("logging in to document store")
	token, err := cc.Token(ctx)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, &TransferError{
				Op:         "get access token",
				StatusCode: retrieveErr.Response.StatusCode,
				Body:       string(retrieveErr.Body),
			}
		}
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}
	logger.Info().Msg("successfully acquired access token")

	return &Client{
		httpClient: &http.Client{},
		siteURL:    fmt.Sprintf("%s/sites/%s", base, cfg.SiteName),
		authHeader: "Bearer " + token.AccessToken,
	}, nil
}

// Download fetches a file from the store as bytes.
func (c *Client) Download(ctx context.Context, serverRelativePath string) ([]byte, error) {
	logger := zerolog.Ctx(ctx)

	endpoint := fmt.Sprintf("%s/_api/web/GetFileByServerRelativeUrl('%s')/OpenBinaryStream()",
		c.siteURL, serverRelativePath)

	logger.Info().Str("path", serverRelativePath).Msg("downloading file from document store")
	return c.do(ctx, "download file", http.MethodGet, endpoint, nil)
}

// DownloadToFile fetches a file from the store into an ephemeral local file
// and returns its path.
func (c *Client) DownloadToFile(ctx context.Context, serverRelativePath string) (string, error) {
	logger := zerolog.Ctx(ctx)

	data, err := c.Download(ctx, serverRelativePath)
	if err != nil {
		return "", err
	}
	logger.Info().Int("bytes", len(data)).Msg("downloaded file")

	f, err := os.CreateTemp("", "*.xlsx")
	if err != nil {
		return "", fmt.Errorf("failed to create download file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to write download file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	logger.Info().Str("path", f.Name()).Msg("file saved locally")
	return f.Name(), nil
}

// Upload stores content under the given library and subfolder, overwriting
// any existing file of the same name.
func (c *Client) Upload(ctx context.Context, library, subfolder, name string, content []byte) error {
	logger := zerolog.Ctx(ctx)

	endpoint := fmt.Sprintf(
		"%s/_api/web/getfolderbyserverrelativeurl('%s/%s/')/files/add(url='%s', overwrite=true)",
		c.siteURL, library, subfolder, name)

	logger.Info().Str("name", name).Msg("uploading file to document store")
	if _, err := c.do(ctx, "upload file", http.MethodPost, endpoint, bytes.NewReader(content)); err != nil {
		return err
	}

	logger.Info().Msg("file uploaded successfully")
	return nil
}

// UploadFile uploads a local file's contents.
func (c *Client) UploadFile(ctx context.Context, library, subfolder, name, localPath string) error {
	content, err := os.ReadFile(localPath)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", localPath, err)
	}
	return c.Upload(ctx, library, subfolder, name, content)
}

func (c *Client) do(ctx context.Context, op, method, endpoint string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", op, err)
	}
	req.Header.Set("Authorization", c.authHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransferError{Op: op, StatusCode: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}
