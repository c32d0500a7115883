package apiclient

import (
	"net/url"
	"strings"

	"github.com/jrsteele09/go-hotel-admin/internal/utils"
)

// EncodeQuery renders params with sorted keys. Slices become repeated keys in element
// order and nil values are dropped, so equal params always encode identically.
func EncodeQuery(params map[string]any) string {
	return queryValues(nil, params).Encode()
}

func queryValues(base url.Values, params map[string]any) url.Values {
	values := url.Values{}
	for k, vs := range base {
		values[k] = append([]string(nil), vs...)
	}
	for k, v := range params {
		strs := utils.ToStringSlice(v)
		if len(strs) == 0 {
			continue
		}
		values[k] = strs
	}
	return values
}

// resolve joins path onto the base URL and merges params into any query already
// present in path.
func (c *Client) resolve(path string, params map[string]any) (*url.URL, error) {
	rawPath, rawQuery, _ := strings.Cut(path, "?")
	existing, err := url.ParseQuery(rawQuery)
	if err != nil {
		return nil, err
	}
	u := c.baseURL.JoinPath(rawPath)
	// JoinPath keeps the result relative when the base URL has no path
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
		if u.RawPath != "" {
			u.RawPath = "/" + u.RawPath
		}
	}
	u.RawQuery = queryValues(existing, params).Encode()
	return u, nil
}
