package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kbukum/bukku-go/errors"
	"github.com/kbukum/bukku-go/httpclient"
)

func writeJSON(w io.Writer, v any, compact bool) error {
	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// printError writes err for a terminal user. API failures include the
// server payload when there is one.
func printError(w io.Writer, err error) {
	if apiErr, ok := httpclient.AsAPIError(err); ok {
		fmt.Fprintf(w, "error: %s\n", apiErr.Message)
		if apiErr.Payload != nil {
			_ = writeJSON(w, apiErr.Payload, false)
		}
		return
	}
	if appErr, ok := errors.AsAppError(err); ok {
		fmt.Fprintf(w, "error: %s\n", appErr.Message)
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
