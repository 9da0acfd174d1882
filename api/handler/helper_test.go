package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type GinTester struct {
	ginHandler gin.HandlerFunc
	gctx       *gin.Context
	ctx        context.Context
	response   *httptest.ResponseRecorder
	OKText     string // text of httpbase.OK
	_executed  bool
}

func NewGinTester() *GinTester {
	response := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(response)
	ctx.Request = &http.Request{
		URL:    &url.URL{},
		Header: http.Header{"Content-Type": []string{"application/json"}},
	}

	return &GinTester{
		ginHandler: nil,
		gctx:       ctx,
		ctx:        ctx.Request.Context(),
		response:   response,
		OKText:     "OK",
	}
}

func (g *GinTester) Handler(handler gin.HandlerFunc) {
	g.ginHandler = handler
}

func (g *GinTester) Execute() {
	g.ginHandler(g.gctx)
	g._executed = true
}

func (g *GinTester) WithParam(key string, value string) *GinTester {
	params := g.gctx.Params
	for i, param := range params {
		if param.Key == key {
			params[i].Value = value
			return g
		}
	}
	g.gctx.AddParam(key, value)
	return g
}

func (g *GinTester) WithBody(t *testing.T, body any) *GinTester {
	b, err := json.Marshal(body)
	require.Nil(t, err)
	g.gctx.Request.Body = io.NopCloser(bytes.NewBuffer(b))
	return g
}

func (g *GinTester) WithRawBody(body string) *GinTester {
	g.gctx.Request.Body = io.NopCloser(bytes.NewBufferString(body))
	return g
}

func (g *GinTester) ResponseEq(t *testing.T, code int, msg string, expected any) {
	if !g._executed {
		require.FailNow(t, "call Execute method first")
	}
	var r = struct {
		Msg  string `json:"msg"`
		Data any    `json:"data,omitempty"`
	}{
		Msg:  msg,
		Data: expected,
	}
	b, err := json.Marshal(r)
	require.NoError(t, err)
	require.Equal(t, code, g.response.Code, g.response.Body.String())
	require.JSONEq(t, string(b), g.response.Body.String())
}
