/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package alertengine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"time"
)

// templateFuncs are available inside title/body templates, same set the
// teacher's dispatcher exposed to its channel templates.
var templateFuncs = template.FuncMap{
	"formatTime": func(t time.Time, layout string) string {
		if layout == "RFC3339" {
			return t.Format(time.RFC3339)
		}
		return t.Format(layout)
	},
	"humanizeDuration": func(d time.Duration) string {
		if d < time.Minute {
			return fmt.Sprintf("%ds", int(d.Seconds()))
		}
		if d < time.Hour {
			return fmt.Sprintf("%dm", int(d.Minutes()))
		}
		if d < 24*time.Hour {
			return fmt.Sprintf("%dh", int(d.Hours()))
		}
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	},
	"truncate": func(s string, n int) string {
		if len(s) <= n {
			return s
		}
		return s[:n] + "..."
	},
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
	"jsonEscape": func(s string) string {
		b, err := json.Marshal(s)
		if err != nil {
			return `""`
		}
		return string(b)
	},
}

// renderData is the struct substituted into a title/body template.
type renderData struct {
	MonitorName      string
	MonitorNamespace string
	MonitorID        string
	State            string
	Reason           string
	Message          string
	Latency          time.Duration
}

const (
	defaultTitleTemplate = "[{{ upper .State }}] {{ .MonitorName }}"
	defaultBodyTemplate  = "Monitor {{ .MonitorNamespace }}/{{ .MonitorName }} is now {{ .State }}" +
		"{{ if .Reason }} ({{ .Reason }}){{ end }}.\n{{ .Message }}\nLatency: {{ humanizeDuration .Latency }}"
)

// placeholderReplacer rewrites the spec's {monitorName}-style placeholders
// into the Go template field references templateFuncs and renderData expect,
// so policy authors can write either form.
var placeholderReplacer = strings.NewReplacer(
	"{monitorName}", "{{ .MonitorName }}",
	"{monitorId}", "{{ .MonitorID }}",
	"{state}", "{{ .State }}",
	"{reason}", "{{ .Reason }}",
	"{message}", "{{ .Message }}",
	"{latency}", "{{ humanizeDuration .Latency }}",
)

// render parses tmplStr (falling back to def when empty), substitutes the
// placeholder forms, and executes it against data. A malformed template
// falls back to def rather than failing the whole dispatch.
func render(tmplStr, def string, data renderData) string {
	if tmplStr == "" {
		tmplStr = def
	}
	out, err := execute(tmplStr, data)
	if err != nil {
		out, err = execute(def, data)
		if err != nil {
			return data.MonitorName
		}
	}
	return out
}

func execute(tmplStr string, data renderData) (string, error) {
	tmpl, err := template.New("alert").Funcs(templateFuncs).Parse(placeholderReplacer.Replace(tmplStr))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// dedupKey computes a policy's dedup key for an event: keyTemplate
// substituting {monitorName}/{monitorId}, or "<monitorId>:<policyName>" when
// keyTemplate is empty.
func dedupKey(keyTemplate, monitorID, monitorName, policyName string) string {
	if keyTemplate == "" {
		return monitorID + ":" + policyName
	}
	r := strings.NewReplacer("{monitorName}", monitorName, "{monitorId}", monitorID)
	return r.Replace(keyTemplate)
}
