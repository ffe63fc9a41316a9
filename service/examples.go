package service

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/fulldump/apitest"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"go.uber.org/zap"

	"github.com/Ghost835545/ScheduleMultipartiteGraph/utils"
)

// ExamplesPathEnv names the directory where acceptance runs write one
// markdown example per documented request. Nothing is written when unset.
const ExamplesPathEnv = "API_EXAMPLES_PATH"

// SaveExample renders a request/response pair as markdown with a curl
// snippet and the raw HTTP exchange.
func SaveExample(response *apitest.Response, title, description string) {

	dir := os.Getenv(ExamplesPathEnv)
	if dir == "" {
		return
	}

	request := response.Request

	query := request.URL.RawQuery
	if query != "" {
		query = "?" + query
	}
	requestBody := indentJSON(response.BodyRequestString())

	md := &strings.Builder{}
	md.WriteString("# " + title + "\n\n")
	if description = cropTabs(description); description != "" {
		md.WriteString(description + "\n\n")
	}

	md.WriteString("Curl example:\n\n```sh\ncurl ")
	if request.Method != http.MethodGet {
		md.WriteString("-X " + request.Method + " ")
	}
	md.WriteString(`"https://example.com` + request.URL.Path + query + `"`)
	for _, k := range sortedKeys(request.Header) {
		for _, v := range request.Header[k] {
			md.WriteString(" \\\n-H \"" + k + ": " + v + "\"")
		}
	}
	if requestBody != "" {
		md.WriteString(" \\\n-d '" + requestBody + "'")
	}
	md.WriteString("\n```\n\n")

	md.WriteString("HTTP request/response example:\n\n```http\n")
	md.WriteString(request.Method + " " + request.URL.Path + query + " " + request.Proto + "\n")
	md.WriteString("Host: example.com\n")
	for _, k := range sortedKeys(request.Header) {
		for _, v := range request.Header[k] {
			md.WriteString(k + ": " + v + "\n")
		}
	}
	md.WriteString("\n" + requestBody + "\n\n")

	md.WriteString(response.Proto + " " + response.Status + "\n")
	for _, k := range sortedKeys(response.Header) {
		if k == "Date" {
			// stable output between runs
			md.WriteString("Date: Mon, 01 Sep 2025 10:00:00 GMT\n")
			continue
		}
		for _, v := range response.Header[k] {
			md.WriteString(k + ": " + v + "\n")
		}
	}
	md.WriteString("\n" + indentJSON(response.BodyString()) + "\n```\n")

	filename := strings.ReplaceAll(strings.ToLower(title), " ", "_") + ".md"
	p := filepath.Join(dir, filepath.Clean("/"+filename))

	l := utils.GetLogger()
	err := os.WriteFile(p, []byte(md.String()), 0666)
	if err != nil {
		l.Error("save example", zap.String("file", p), zap.Error(err))
		return
	}
	l.Debug("save example", zap.String("file", p))
}

func indentJSON(body string) string {

	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return body
	}

	b, err := json.Marshal(v, jsontext.WithIndent("    "), json.Deterministic(true))
	if err != nil {
		return body
	}

	return string(b)
}

func sortedKeys(h http.Header) []string {
	return utils.GetKeys(map[string][]string(h))
}

// cropTabs removes the common tab indentation of a raw string literal
// written inside a test.
func cropTabs(d string) string {

	lines := strings.Split(strings.Trim(d, "\n"), "\n")

	minTabs := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tabs := len(line) - len(strings.TrimLeft(line, "\t"))
		if minTabs < 0 || tabs < minTabs {
			minTabs = tabs
		}
	}
	if minTabs <= 0 {
		return strings.TrimSpace(d)
	}

	prefix := strings.Repeat("\t", minTabs)
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
