package tjp

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"

	log "github.com/sirupsen/logrus"
)

// CreateNote creates a note with the given attributes. To create a todo, use a patch built with
// AsTodo; to know its id in advance, set one with WithID.
func (c *Client) CreateNote(ctx context.Context, note *NotePatch) error {
	return c.send(ctx, "create note", "POST", "/notes", note)
}

// UpdateNote changes the attributes of an existing note. Attributes not set in the patch are left
// alone by Joplin.
func (c *Client) UpdateNote(ctx context.Context, id string, note *NotePatch) error {
	return c.send(ctx, "update note", "PUT", "/notes/"+url.PathEscape(id), note)
}

func (c *Client) send(ctx context.Context, op, method, path string, note *NotePatch) error {
	b, err := json.Marshal(note)
	if err != nil {
		return err
	}
	_, _ = c.wlog.Write([]byte(`{"type": "request", "op": "` + op + `", "request": `))
	_, _ = c.wlog.Write(b)
	_, _ = c.wlog.Write([]byte("}\n"))
	log.WithFields(log.Fields{
		"op":   op,
		"path": path,
	}).Debug("Sending patch")
	// The response echoes the note, which we have no use for.
	_, err = c.do(ctx, op, method, path, nil, bytes.NewReader(b))
	return err
}
