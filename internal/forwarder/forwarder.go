// Package forwarder relays a converted CSV file to a Firefly III data
// importer instance. The importer's autoupload endpoint takes a multipart
// body with the importable file and a dialect-specific configuration
// document, authenticated with a bearer token plus a shared secret.
package forwarder

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"ledgerbridge/statement-csv/internal/logging"
	"ledgerbridge/statement-csv/internal/processor"
)

//go:embed configs/*.json
var importerConfigs embed.FS

// Request describes one forwarding exchange.
type Request struct {
	// FilePath is the converted CSV to upload.
	FilePath string
	// Dialect selects the importer configuration document.
	Dialect processor.Type
	// BaseURL is the Firefly III data importer base URL.
	BaseURL string
	// Token is the Firefly III personal access token.
	Token string
	// Secret is the importer's autoupload secret.
	Secret string
}

// Response is the importer's decoded reply.
type Response struct {
	Status  int
	Body    json.RawMessage
	RawBody string
}

// Forwarder posts converted files to the data importer.
type Forwarder struct {
	client *http.Client
	logger logging.Logger
}

// New creates a Forwarder. A nil client gets a default with a generous
// timeout; importer runs can take a while on large files.
func New(client *http.Client, logger logging.Logger) *Forwarder {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Minute}
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Forwarder{client: client, logger: logger}
}

// ImporterConfig returns the embedded importer configuration document for
// a dialect. Unknown dialects get the peer-trade document, mirroring the
// dispatcher's fail-open default.
func ImporterConfig(typ processor.Type) ([]byte, error) {
	name := "configs/peer-trade.json"
	if typ == processor.BankStatement {
		name = "configs/bank-statement.json"
	}
	return importerConfigs.ReadFile(name)
}

// Forward uploads the converted file and its importer configuration.
func (f *Forwarder) Forward(ctx context.Context, req Request) (*Response, error) {
	if req.BaseURL == "" || req.Token == "" || req.Secret == "" {
		return nil, fmt.Errorf("missing importer URL, token or secret")
	}

	configDoc, err := ImporterConfig(req.Dialect)
	if err != nil {
		return nil, fmt.Errorf("error loading importer config: %w", err)
	}

	body, contentType, err := buildMultipartBody(req.FilePath, configDoc)
	if err != nil {
		return nil, err
	}

	endpoint := strings.TrimRight(req.BaseURL, "/") +
		"/dataimporter/autoupload?secret=" + url.QueryEscape(req.Secret)

	f.logger.Info("Forwarding converted file to data importer",
		logging.Field{Key: logging.FieldFile, Value: req.FilePath},
		logging.Field{Key: logging.FieldDialect, Value: string(req.Dialect)})

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("error building importer request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error posting to importer: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			f.logger.WithError(err).Warn("Failed to close importer response body")
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading importer response: %w", err)
	}

	result := &Response{Status: resp.StatusCode, RawBody: string(respBody)}
	if json.Valid(respBody) {
		result.Body = json.RawMessage(respBody)
	}

	if resp.StatusCode >= 300 {
		return result, fmt.Errorf("importer returned status %d", resp.StatusCode)
	}
	return result, nil
}

func buildMultipartBody(filePath string, configDoc []byte) (*bytes.Buffer, string, error) {
	file, err := os.Open(filePath) // #nosec G304 -- forwarding our own output file
	if err != nil {
		return nil, "", fmt.Errorf("error opening converted file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	importable, err := writer.CreateFormFile("importable", "import.csv")
	if err != nil {
		return nil, "", fmt.Errorf("error creating importable part: %w", err)
	}
	if _, err := io.Copy(importable, file); err != nil {
		return nil, "", fmt.Errorf("error copying converted file: %w", err)
	}

	configPart, err := writer.CreateFormFile("json", "config.json")
	if err != nil {
		return nil, "", fmt.Errorf("error creating config part: %w", err)
	}
	if _, err := configPart.Write(configDoc); err != nil {
		return nil, "", fmt.Errorf("error writing importer config: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("error finalizing multipart body: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}
