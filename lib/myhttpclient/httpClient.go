package myhttpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"time"
)

const (
	timeout = 5 * time.Second
	debug   = false
)

type jsonHTTPClient struct {
	client *http.Client
}

func newJSONHTTPClient() HTTPSender {
	return &jsonHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c jsonHTTPClient) Send(ctx context.Context, method string, url string, body []byte) (int, []byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return 0, []byte{}, fmt.Errorf("error creating http request for %s %s: %w", method, url, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	if debug {
		reqDump, err := httputil.DumpRequestOut(httpReq, true)
		if err == nil {
			fmt.Printf("HTTP-req:\n%s", string(reqDump))
		}
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return 0, []byte{}, fmt.Errorf("error sending %s %s: %w", method, url, err)
	}
	defer httpResp.Body.Close()

	log.Printf("HTTP call: %s %s -> %d", method, url, httpResp.StatusCode)

	if debug {
		respDump, err := httputil.DumpResponse(httpResp, true)
		if err == nil {
			fmt.Printf("HTTP-resp:\n%s", string(respDump))
		}
	}

	respPayload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return 0, []byte{}, fmt.Errorf("error reading response %s %s: %w", method, url, err)
	}

	return httpResp.StatusCode, respPayload, nil
}
