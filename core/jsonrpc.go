// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"encoding/json"
	"net/http"
)

const jsonContentType = "application/x-amz-json-1.1"

// marshalJSON builds an AWS JSON 1.1 request: always POST /, the operation
// named in X-Amz-Target and the whole input as the body.
func (c *Client) marshalJSON(op Operation, in any, endpoint string) (*wireRequest, error) {
	body := []byte("{}")
	if !isNil(in) {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		body = b
	}

	h := http.Header{}
	h.Set("Content-Type", jsonContentType)
	h.Set("X-Amz-Target", c.info.TargetPrefix+"."+op.Name)

	return &wireRequest{
		Method: http.MethodPost,
		URL:    endpoint + "/",
		Header: h,
		Body:   body,
	}, nil
}
