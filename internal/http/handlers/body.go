package handlers

import (
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

const maxBodyBytes = 1 << 20

// jsonBody is a lenient view over a request body. Anything that is not a JSON
// object reads as {}.
type jsonBody struct {
	obj gjson.Result
}

func readBody(c *gin.Context) jsonBody {
	if c.Request == nil || c.Request.Body == nil {
		return jsonBody{}
	}
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil || !gjson.ValidBytes(raw) {
		return jsonBody{}
	}
	res := gjson.ParseBytes(raw)
	if !res.IsObject() {
		return jsonBody{}
	}
	return jsonBody{obj: res}
}

// String returns the trimmed string at key; non-string values read as "".
func (b jsonBody) String(key string) string {
	v := b.obj.Get(key)
	if v.Type != gjson.String {
		return ""
	}
	return strings.TrimSpace(v.Str)
}

// Raw returns the untrimmed string at key. Whitespace-only values count as
// present.
func (b jsonBody) Raw(key string) string {
	v := b.obj.Get(key)
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}

// Int returns the integer at key or def when absent or not numeric.
func (b jsonBody) Int(key string, def int) int {
	v := b.obj.Get(key)
	switch v.Type {
	case gjson.Number:
		return int(v.Int())
	case gjson.String:
		if n := gjson.Parse(strings.TrimSpace(v.Str)); n.Type == gjson.Number {
			return int(n.Int())
		}
	}
	return def
}
