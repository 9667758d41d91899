package wpt

import "net/url"

const (
	runTestPath    = "/runtest.php"
	testStatusPath = "/testStatus.php"

	formatJSON = "json"
)

// Query renders the runtest.php query parameters. Empty fields are left out
// so the service applies its own defaults; the response format is always JSON.
func (r TestRequest) Query() url.Values {
	params := url.Values{}
	set := func(key, value string) {
		if value != "" {
			params.Set(key, value)
		}
	}

	set("url", r.URL)
	set("label", r.Label)
	set("runs", r.Runs)
	set("fvonly", r.FVOnly)
	set("login", r.Login)
	set("password", r.Password)
	set("authType", r.AuthType)
	set("video", r.Video)
	set("lighthouse", r.Lighthouse)
	set("private", r.Private)
	params.Set("f", formatJSON)
	set("pingback", r.Pingback)

	return params
}

func statusQuery(testID string) url.Values {
	params := url.Values{}
	params.Set("test", testID)
	return params
}
