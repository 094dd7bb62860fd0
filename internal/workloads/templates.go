package workloads

import (
	"bytes"
	htmltemplate "html/template"
	"text/template"
)

// pageTemplate is valid for both template engines.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <link rel="icon" href="{{.Favicon}}">
</head>
<body>
  <h1>Hello {{.Name}}</h1>
  <ul>
  {{- range .List}}
    <li>{{.}}</li>
  {{- end}}
  </ul>
</body>
</html>
`

type pageParams struct {
	Title   string
	Name    string
	Favicon string
	List    []string
}

var page = pageParams{
	Title:   "test",
	Name:    "world",
	Favicon: "favicon.ico",
	List:    []string{"first", "second", "third"},
}

func templatesSuite() *Suite {
	return &Suite{
		Name:        "templates",
		Description: "text/template versus html/template rendering the same page, parsed on every call",
		Paired:      true,
		Tests: []Test{
			{"testTextTemplate", testTextTemplate},
			{"testHTMLTemplate", testHTMLTemplate},
		},
	}
}

func testTextTemplate() error {
	tmpl, err := template.New("index").Parse(pageTemplate)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page); err != nil {
		return err
	}
	sink = buf.Len()
	return nil
}

func testHTMLTemplate() error {
	tmpl, err := htmltemplate.New("index").Parse(pageTemplate)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page); err != nil {
		return err
	}
	sink = buf.Len()
	return nil
}
