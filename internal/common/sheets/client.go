// internal/common/sheets/client.go
// Package sheets wraps the Google Sheets append-only store. One client per
// target spreadsheet, created at startup and shared across requests.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/idolbinhminhtran/UAVS-REGISTRATION-FORM/internal/common/config"

	"golang.org/x/oauth2/google"
	gsheets "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"
)

// Client wraps the Sheets service for one spreadsheet.
type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
	sheetName     string
}

// NewClient builds the service-account credential material the same way the
// original deployment assembled it from environment pieces, then opens the
// Sheets service via a JWT client.
func NewClient(ctx context.Context, cfg config.SheetsConfig, spreadsheetID, sheetName string) (*Client, error) {
	if !cfg.HasCredentials() {
		return nil, fmt.Errorf("sheets credentials missing")
	}
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id missing")
	}

	credJSON, err := json.Marshal(map[string]string{
		"type":                        "service_account",
		"project_id":                  cfg.ProjectID,
		"private_key_id":              cfg.PrivateKeyID,
		"private_key":                 cfg.PrivateKey,
		"client_email":                cfg.ServiceAccountEmail,
		"client_id":                   cfg.ClientID,
		"auth_uri":                    "https://accounts.google.com/o/oauth2/auth",
		"token_uri":                   "https://oauth2.googleapis.com/token",
		"auth_provider_x509_cert_url": "https://www.googleapis.com/oauth2/v1/certs",
		"client_x509_cert_url":        fmt.Sprintf("https://www.googleapis.com/robot/v1/metadata/x509/%s", cfg.ServiceAccountEmail),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal service account: %w", err)
	}

	jwtCfg, err := google.JWTConfigFromJSON(credJSON, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account: %w", err)
	}

	svc, err := gsheets.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// AppendRow appends one ordered cell sequence below the existing rows.
// No retry: delivery guarantees are the sheet's own.
func (c *Client) AppendRow(ctx context.Context, row []string) error {
	values := make([]interface{}, len(row))
	for i, cell := range row {
		values[i] = cell
	}

	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, c.sheetName, &gsheets.ValueRange{
			Values: [][]interface{}{values},
		}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return nil
}

// EnsureHeaders writes the header row once if the sheet is still empty.
// Called only at startup, never on the per-request path.
func (c *Client) EnsureHeaders(ctx context.Context, headers []string) error {
	resp, err := c.svc.Spreadsheets.Values.
		Get(c.spreadsheetID, fmt.Sprintf("%s!1:1", c.sheetName)).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("read header row: %w", err)
	}

	if len(resp.Values) > 0 && len(resp.Values[0]) > 0 {
		return nil
	}
	return c.AppendRow(ctx, headers)
}

// Ping verifies the spreadsheet is reachable with the configured credentials.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("spreadsheetId").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("spreadsheet unreachable: %w", err)
	}
	return nil
}
