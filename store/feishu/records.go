package feishu

import (
	"context"
	"fmt"
	"net/url"

	"github.com/caresuite/answerkit/core"
	"github.com/caresuite/answerkit/store"
)

// Bitable column names of the Answers table.
const (
	fieldQuestion       = "问题"
	fieldStandardAnswer = "标准回答"
	fieldEnableStatus   = "状态"
	fieldScene          = "使用场景"
	fieldTone           = "语气"
	fieldProductName    = "对应产品"
	fieldProductID      = "product_id"
)

type record struct {
	RecordID string         `json:"record_id"`
	Fields   map[string]any `json:"fields"`
}

type recordsResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data *struct {
		Items     []record `json:"items"`
		HasMore   bool     `json:"has_more"`
		PageToken string   `json:"page_token"`
	} `json:"data"`
}

type recordResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data *struct {
		Record record `json:"record"`
	} `json:"data"`
}

type tablesResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data *struct {
		Items []struct {
			TableID string `json:"table_id"`
			Name    string `json:"name"`
		} `json:"items"`
	} `json:"data"`
}

type updateResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// ListEntries fetches every row of the Answers table, following
// page tokens until the API reports no more data.
func (c *Client) ListEntries(ctx context.Context) ([]*core.Entry, error) {
	base := fmt.Sprintf("%s/bitable/v1/apps/%s/tables/%s/records",
		c.baseURL, c.appToken, c.tableID)

	var entries []*core.Entry
	pageToken := ""
	for {
		u := base
		if pageToken != "" {
			u = base + "?page_token=" + url.QueryEscape(pageToken)
		}

		var rr recordsResponse
		if err := c.getJSON(ctx, u, &rr); err != nil {
			return nil, err
		}
		if rr.Code != 0 {
			return nil, fmt.Errorf("%w: listing records: %s (code %d)", store.ErrRemoteAPI, rr.Msg, rr.Code)
		}
		if rr.Data == nil {
			return nil, fmt.Errorf("%w: records response missing data", store.ErrRemoteAPI)
		}

		for _, rec := range rr.Data.Items {
			entries = append(entries, entryFromRecord(rec))
		}

		if !rr.Data.HasMore || rr.Data.PageToken == "" {
			break
		}
		pageToken = rr.Data.PageToken
	}

	c.logger.Debug("listed entries", "count", len(entries))
	return entries, nil
}

// GetEntry fetches a single row by record reference.
func (c *Client) GetEntry(ctx context.Context, recordID string) (*core.Entry, error) {
	if !core.IsValidRecordRef(recordID) {
		return nil, fmt.Errorf("%w: %q", core.ErrInvalidRecordRef, recordID)
	}

	u := fmt.Sprintf("%s/bitable/v1/apps/%s/tables/%s/records/%s",
		c.baseURL, c.appToken, c.tableID, url.PathEscape(recordID))

	var rr recordResponse
	if err := c.getJSON(ctx, u, &rr); err != nil {
		return nil, err
	}
	if rr.Code != 0 {
		return nil, fmt.Errorf("%w: %q: %s (code %d)", store.ErrNotFound, recordID, rr.Msg, rr.Code)
	}
	if rr.Data == nil {
		return nil, fmt.Errorf("%w: record response missing data", store.ErrRemoteAPI)
	}
	return entryFromRecord(rr.Data.Record), nil
}

// UpdateEntry writes the entry's fields back to its table row.
func (c *Client) UpdateEntry(ctx context.Context, entry *core.Entry) error {
	if err := core.ValidateEntry(entry); err != nil {
		return err
	}

	u := fmt.Sprintf("%s/bitable/v1/apps/%s/tables/%s/records/%s",
		c.baseURL, c.appToken, c.tableID, url.PathEscape(entry.RecordID))

	body := map[string]any{
		"fields": map[string]any{
			fieldQuestion:       entry.Question,
			fieldStandardAnswer: entry.StandardAnswer,
		},
	}

	var ur updateResponse
	if err := c.putJSON(ctx, u, body, &ur); err != nil {
		return err
	}
	if ur.Code != 0 {
		return fmt.Errorf("%w: updating %q: %s (code %d)", store.ErrRemoteAPI, entry.RecordID, ur.Msg, ur.Code)
	}

	c.logger.Info("updated entry", "record_id", entry.RecordID)
	return nil
}

// ListTables enumerates the tables of the configured Bitable app.
func (c *Client) ListTables(ctx context.Context) ([]store.Table, error) {
	u := fmt.Sprintf("%s/bitable/v1/apps/%s/tables", c.baseURL, c.appToken)

	var tr tablesResponse
	if err := c.getJSON(ctx, u, &tr); err != nil {
		return nil, err
	}
	if tr.Code != 0 {
		return nil, fmt.Errorf("%w: listing tables: %s (code %d)", store.ErrRemoteAPI, tr.Msg, tr.Code)
	}
	if tr.Data == nil {
		return nil, fmt.Errorf("%w: tables response missing data", store.ErrRemoteAPI)
	}

	tables := make([]store.Table, 0, len(tr.Data.Items))
	for _, item := range tr.Data.Items {
		tables = append(tables, store.Table{ID: item.TableID, Name: item.Name})
	}
	return tables, nil
}

// entryFromRecord maps a raw Bitable record to an Entry, coercing each
// field to a display string.
func entryFromRecord(rec record) *core.Entry {
	return &core.Entry{
		RecordID:       rec.RecordID,
		Question:       fieldString(rec.Fields, fieldQuestion),
		StandardAnswer: fieldString(rec.Fields, fieldStandardAnswer),
		EnableStatus:   fieldString(rec.Fields, fieldEnableStatus),
		Scene:          fieldString(rec.Fields, fieldScene),
		Tone:           fieldString(rec.Fields, fieldTone),
		ProductName:    fieldString(rec.Fields, fieldProductName),
		ProductID:      fieldString(rec.Fields, fieldProductID),
	}
}
