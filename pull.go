package tjp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ListFolders fetches every folder, following pagination.
func (c *Client) ListFolders(ctx context.Context) ([]*Folder, error) {
	var folders []*Folder
	for page := 1; ; page++ {
		query := make(url.Values)
		query.Set("fields", "id,parent_id,title")
		query.Set("page", strconv.Itoa(page))
		b, err := c.do(ctx, "list folders", "GET", "/folders", query, nil)
		if err != nil {
			return nil, err
		}
		var fp folderPage
		if err := json.Unmarshal(b, &fp); err != nil {
			return nil, fmt.Errorf("list folders, unmarshal: %v: %w", err, ErrTransport)
		}
		folders = append(folders, fp.Items...)
		if !fp.HasMore {
			return folders, nil
		}
	}
}

// ListNotes fetches one page (counting from 1) of the notes in the given folder, or of all notes
// if folderID is empty. Notes are ordered by ascending update time. If fields is empty, Joplin's
// default fields are returned.
func (c *Client) ListNotes(ctx context.Context, folderID string, page int, fields ...string) (*NotePage, error) {
	path := "/notes"
	if folderID != "" {
		path = "/folders/" + url.PathEscape(folderID) + "/notes"
	}
	query := make(url.Values)
	query.Set("order_by", "updated_time")
	query.Set("order_dir", "ASC")
	if len(fields) != 0 {
		query.Set("fields", strings.Join(fields, ","))
	}
	query.Set("page", strconv.Itoa(page))
	log.WithFields(log.Fields{
		"folder": folderID,
		"page":   page,
	}).Debug("Fetching notes")
	b, err := c.do(ctx, "list notes", "GET", path, query, nil)
	if err != nil {
		return nil, err
	}
	var np NotePage
	if err := json.Unmarshal(b, &np); err != nil {
		return nil, fmt.Errorf("list notes, unmarshal: %v: %w", err, ErrTransport)
	}
	return &np, nil
}

// NoteBody fetches the body of a single note.
func (c *Client) NoteBody(ctx context.Context, id string) (string, error) {
	query := make(url.Values)
	query.Set("fields", "body")
	b, err := c.do(ctx, "note body", "GET", "/notes/"+url.PathEscape(id), query, nil)
	if err != nil {
		return "", err
	}
	var note struct {
		Body string `json:"body"`
	}
	if err := json.Unmarshal(b, &note); err != nil {
		return "", fmt.Errorf("note body %s, unmarshal: %v: %w", id, err, ErrTransport)
	}
	return note.Body, nil
}
