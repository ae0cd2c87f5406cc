package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type RequestOptions struct {
	Method         string
	URL            string
	Body           any
	AuthToken      string
	ExpectedStatus int
}

type Response struct {
	Code int
	Body []byte
}

func MakeRequest(t *testing.T, router *gin.Engine, opts RequestOptions) *Response {
	t.Helper()

	var requestBody *bytes.Buffer

	switch body := opts.Body.(type) {
	case nil:
		requestBody = bytes.NewBuffer(nil)
	case string:
		requestBody = bytes.NewBufferString(body)
	default:
		bodyJSON, err := json.Marshal(body)
		require.NoError(t, err)
		requestBody = bytes.NewBuffer(bodyJSON)
	}

	req, err := http.NewRequest(opts.Method, opts.URL, requestBody)
	require.NoError(t, err)

	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if opts.AuthToken != "" {
		req.Header.Set("Authorization", opts.AuthToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if opts.ExpectedStatus != 0 {
		assert.Equal(t, opts.ExpectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())
	}

	return &Response{Code: w.Code, Body: w.Body.Bytes()}
}

func MakePostRequest(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
) *Response {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         "POST",
		URL:            url,
		Body:           body,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	})
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
	out any,
) {
	t.Helper()

	resp := MakePostRequest(t, router, url, authToken, body, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, out))
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	expectedStatus int,
	out any,
) {
	t.Helper()

	resp := MakeRequest(t, router, RequestOptions{
		Method:         "GET",
		URL:            url,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	})
	require.NoError(t, json.Unmarshal(resp.Body, out))
}
