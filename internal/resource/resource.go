// Package resource implements the CRUD contract every remote entity shares.
// One generic client replaces the per-entity fetch wrappers the pages would
// otherwise each carry.
package resource

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/grh-water/water-console/internal/tableapi"
	"go.uber.org/zap"
)

// Mapper translates between backend records and a typed entity. Both
// directions are total: FromRecord defaults absent fields, Fields re-emits
// every backend key because updates overwrite the full field set.
type Mapper[E any] interface {
	FromRecord(tableapi.Record) E
	Fields(E) tableapi.FieldMap
}

// Client is the CRUD client for one entity table.
type Client[E any] struct {
	api      *tableapi.Client
	mapper   Mapper[E]
	tableID  string
	name     string
	pageSize int
	logger   *zap.Logger
}

// NewClient creates a resource client. name labels log entries and errors
// ("project", "meter", ...). pageSize <= 0 means no pageSize query
// parameter is sent on list.
func NewClient[E any](api *tableapi.Client, mapper Mapper[E], tableID, name string, pageSize int, logger *zap.Logger) *Client[E] {
	return &Client[E]{
		api:      api,
		mapper:   mapper,
		tableID:  tableID,
		name:     name,
		pageSize: pageSize,
		logger:   logger,
	}
}

// List fetches all records and maps them. Order is whatever the backend
// returned.
func (c *Client[E]) List(ctx context.Context) ([]E, error) {
	var query url.Values
	if c.pageSize > 0 {
		query = url.Values{"pageSize": []string{strconv.Itoa(c.pageSize)}}
	}

	resp, err := c.api.Do(ctx, "list "+c.name, http.MethodGet, c.tableID, query, nil)
	if err != nil {
		return nil, err
	}

	entities := make([]E, 0, len(resp.Records))
	for _, r := range resp.Records {
		entities = append(entities, c.mapper.FromRecord(r))
	}
	return entities, nil
}

// Create posts the draft's full field set and returns the stored entity.
// Fields the backend echoes back empty fall back to the draft's values.
func (c *Client[E]) Create(ctx context.Context, draft E) (E, error) {
	var zero E
	fields := c.mapper.Fields(draft)

	resp, err := c.api.Do(ctx, "create "+c.name, http.MethodPost, c.tableID, nil, map[string]interface{}{
		"fields": fields,
	})
	if err != nil {
		return zero, err
	}
	if len(resp.Records) == 0 {
		return zero, &tableapi.InvalidResponseError{Op: "create " + c.name}
	}

	created := resp.Records[0]
	c.logger.Info("created "+c.name, zap.String("id", created.ID.String()))
	return c.mapper.FromRecord(tableapi.Record{
		ID:     created.ID,
		Fields: mergeEcho(fields, created.Fields),
	}), nil
}

// Update patches the record keyed by id with the draft's full field set.
// The same echo fallback rule as Create applies.
func (c *Client[E]) Update(ctx context.Context, id string, draft E) (E, error) {
	var zero E
	fields := c.mapper.Fields(draft)

	resp, err := c.api.Do(ctx, "update "+c.name, http.MethodPatch, c.tableID, nil, map[string]interface{}{
		"id":     tableapi.RecordID(id),
		"fields": fields,
	})
	if err != nil {
		return zero, err
	}
	if len(resp.Records) == 0 {
		return zero, &tableapi.InvalidResponseError{Op: "update " + c.name}
	}

	updated := resp.Records[0]
	c.logger.Info("updated "+c.name, zap.String("id", updated.ID.String()))
	return c.mapper.FromRecord(tableapi.Record{
		ID:     updated.ID,
		Fields: mergeEcho(fields, updated.Fields),
	}), nil
}

// Delete removes the record keyed by id. The id is re-emitted through
// RecordID so numeric ids go out as numbers, the same as Update.
func (c *Client[E]) Delete(ctx context.Context, id string) error {
	_, err := c.api.Do(ctx, "delete "+c.name, http.MethodDelete, c.tableID, nil, map[string]interface{}{
		"id": tableapi.RecordID(id),
	})
	if err != nil {
		return err
	}
	c.logger.Info("deleted "+c.name, zap.String("id", id))
	return nil
}

// mergeEcho overlays the non-empty echoed fields on the submitted ones, so
// every field the backend dropped or blanked keeps the draft's value.
func mergeEcho(submitted, echoed tableapi.FieldMap) tableapi.FieldMap {
	merged := make(tableapi.FieldMap, len(submitted))
	for k, v := range submitted {
		merged[k] = v
	}
	for k, v := range echoed {
		if !tableapi.IsEmptyValue(v) {
			merged[k] = v
		}
	}
	return merged
}
