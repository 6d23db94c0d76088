// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

package dashboard

import "strings"

// BaseURL is the API endpoint the code samples talk to.
const BaseURL = "https://api.example.com/v1"

// Sample is a copyable snippet shown in the code samples pane.
type Sample struct {
	TitleID string // i18n message id
	Code    string
}

const curlSample = `curl {{base}}/chat/completions \
  -H "Authorization: Bearer $API_KEY" \
  -H "Content-Type: application/json" \
  -d '{"model": "default", "messages": [{"role": "user", "content": "Hello"}]}'`

const pythonSample = `import os, requests

resp = requests.post(
    "{{base}}/chat/completions",
    headers={"Authorization": f"Bearer {os.environ['API_KEY']}"},
    json={"model": "default", "messages": [{"role": "user", "content": "Hello"}]},
)
print(resp.json())`

// Samples returns the code samples in display order.
func Samples() []Sample {
	r := strings.NewReplacer("{{base}}", BaseURL)
	return []Sample{
		{TitleID: "samples.curl", Code: r.Replace(curlSample)},
		{TitleID: "samples.python", Code: r.Replace(pythonSample)},
	}
}
