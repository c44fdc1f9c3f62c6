package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/validation"
)

// Operations understood by resource commands.
const (
	opList      = "list"
	opGet       = "get"
	opCreate    = "create"
	opUpdate    = "update"
	opStatus    = "status"
	opArchive   = "archive"
	opUnarchive = "unarchive"
	opDelete    = "delete"
)

var (
	documentOps = []string{opList, opGet, opCreate, opUpdate, opStatus, opDelete}
	archiveOps  = []string{opList, opGet, opCreate, opUpdate, opArchive, opUnarchive, opDelete}
	plainOps    = []string{opList, opGet, opCreate, opUpdate, opDelete}
)

type route struct {
	path string
	ops  []string
}

// routes maps group and resource names to API collections.
var routes = map[string]map[string]route{
	"sales": {
		"quotations":      {"/sales/quotes", documentOps},
		"orders":          {"/sales/orders", documentOps},
		"delivery-orders": {"/sales/delivery_orders", documentOps},
		"invoices":        {"/sales/invoices", documentOps},
		"credit-notes":    {"/sales/credit_notes", documentOps},
		"payments":        {"/sales/payments", documentOps},
		"refunds":         {"/sales/refunds", documentOps},
	},
	"purchases": {
		"orders":               {"/purchases/orders", documentOps},
		"goods-received-notes": {"/purchases/goods_received_notes", documentOps},
		"bills":                {"/purchases/bills", documentOps},
		"credit-notes":         {"/purchases/credit_notes", documentOps},
		"payments":             {"/purchases/payments", documentOps},
		"refunds":              {"/purchases/refunds", documentOps},
	},
	"contacts": {
		"contacts": {"/contacts", archiveOps},
		"groups":   {"/contacts/groups", plainOps},
	},
	"products": {
		"products": {"/products", archiveOps},
		"groups":   {"/products/groups", plainOps},
	},
	"accounting": {
		"accounts":        {"/accounts", archiveOps},
		"journal-entries": {"/journal_entries", documentOps},
	},
	"control-panel": {
		"locations":  {"/locations", archiveOps},
		"tags":       {"/tags", plainOps},
		"tag-groups": {"/tags/groups", plainOps},
	},
}

// resourceCommand is a parsed `<group> <resource> <op> [id]`.
type resourceCommand struct {
	route route
	op    string
	id    int
}

func parseResourceCommand(args []string) (*resourceCommand, error) {
	v := validation.New()
	group, resource, op := argAt(args, 0), argAt(args, 1), argAt(args, 2)

	v.Required("group", group).Required("resource", resource).Required("operation", op)
	if err := v.Validate(); err != nil {
		return nil, err
	}

	resources, ok := routes[group]
	if !ok {
		return nil, validation.New().OneOf("group", group, sortedKeys(routes)).Validate()
	}
	r, ok := resources[resource]
	if !ok {
		return nil, validation.New().OneOf("resource", resource, sortedKeys(resources)).Validate()
	}
	if err := validation.New().OneOf("operation", op, r.ops).Validate(); err != nil {
		return nil, err
	}

	cmd := &resourceCommand{route: r, op: op}
	if op == opList || op == opCreate {
		return cmd, nil
	}

	raw := argAt(args, 3)
	id, err := strconv.Atoi(raw)
	v = validation.New()
	v.Required("id", raw).Custom(raw == "" || (err == nil && id > 0), "id", "must be a positive integer")
	if err := v.Validate(); err != nil {
		return nil, err
	}
	cmd.id = id
	return cmd, nil
}

// request builds the pipeline request for c.
func (c *resourceCommand) request(opts *options, stdin io.Reader) (httpclient.Request, error) {
	item := c.route.path + "/" + strconv.Itoa(c.id)

	switch c.op {
	case opList:
		q, err := parseQuery(opts.query)
		return httpclient.Request{Method: http.MethodGet, Path: c.route.path, Query: q}, err
	case opGet:
		return httpclient.Request{Method: http.MethodGet, Path: item}, nil
	case opDelete:
		return httpclient.Request{Method: http.MethodDelete, Path: item}, nil
	case opArchive, opUnarchive:
		body := map[string]bool{"is_archived": c.op == opArchive}
		return httpclient.Request{Method: http.MethodPatch, Path: item, Body: body}, nil
	case opStatus:
		if opts.status == "" {
			return httpclient.Request{}, validation.New().Required("status", "").Validate()
		}
		body := map[string]string{"status": opts.status}
		return httpclient.Request{Method: http.MethodPatch, Path: item, Body: body}, nil
	}

	body, err := readData(opts.data, stdin)
	if err != nil {
		return httpclient.Request{}, err
	}
	if c.op == opCreate {
		return httpclient.Request{Method: http.MethodPost, Path: c.route.path, Body: body}, nil
	}
	return httpclient.Request{Method: http.MethodPut, Path: item, Body: body}, nil
}

func runResource(ctx context.Context, client *httpclient.Client, opts *options, args []string, stdin io.Reader, stdout io.Writer) error {
	cmd, err := parseResourceCommand(args)
	if err != nil {
		return err
	}
	req, err := cmd.request(opts, stdin)
	if err != nil {
		return err
	}

	resp, err := client.Do(ctx, req)
	if err != nil {
		return err
	}
	if resp.NoContent() || len(resp.Body) == 0 {
		return writeJSON(stdout, map[string]any{"ok": true}, opts.compact)
	}
	return writeJSON(stdout, json.RawMessage(resp.Body), opts.compact)
}

// parseQuery turns key=value pairs into an ordered query.
func parseQuery(pairs []string) (httpclient.Query, error) {
	var q httpclient.Query
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, invalid("query", fmt.Sprintf("expected key=value, got %q", p))
		}
		q = q.Add(k, v)
	}
	return q, nil
}

// readData resolves --data: inline JSON, @file or - for stdin.
func readData(data string, stdin io.Reader) (json.RawMessage, error) {
	var raw []byte
	switch {
	case data == "":
		return nil, validation.New().Required("data", "").Validate()
	case data == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		raw = b
	case strings.HasPrefix(data, "@"):
		b, err := os.ReadFile(data[1:])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", data[1:], err)
		}
		raw = b
	default:
		raw = []byte(data)
	}

	if !json.Valid(raw) {
		return nil, invalid("data", "is not valid JSON")
	}
	return json.RawMessage(raw), nil
}

func invalid(field, message string) error {
	v := validation.New()
	v.AddError(field, message)
	return v.Validate()
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
