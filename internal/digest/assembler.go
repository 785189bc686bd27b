// Package digest assembles per-domain pipeline results into one
// outbound HTML email payload.
package digest

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/bal2005/news-summarizer-agent/internal/pipeline"
)

const bodyTemplate = `<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>{{.SubjectPrefix}}</h2>
  <p>{{.Date}}</p>
  {{range .Sections}}
  <div style="margin-bottom: 24px;">
    <h3>{{.Title}}</h3>
    {{if .StockInfo}}<p><b>{{.StockInfo}}</b></p>{{end}}
    <p style="white-space: pre-line;">{{.Summary}}</p>
    <ul>
      {{range .Articles}}
      <li><a href="{{.URL}}">{{.Title}}</a></li>
      {{end}}
    </ul>
  </div>
  {{end}}
</body>
</html>`

type Assembler struct {
	subjectPrefix string
	tmpl          *template.Template
}

func NewAssembler(subjectPrefix string) *Assembler {
	return &Assembler{
		subjectPrefix: subjectPrefix,
		tmpl:          template.Must(template.New("digest").Parse(bodyTemplate)),
	}
}

// Subject builds the email subject line for a cycle.
func (a *Assembler) Subject(now time.Time) string {
	return fmt.Sprintf("%s — %s", a.subjectPrefix, now.Format("02 Jan 2006"))
}

// Render merges the populated domain digests into one HTML body dated
// at now. Empty digests are skipped; when every domain came up empty it
// returns ok=false and no email should be sent for this cycle.
func (a *Assembler) Render(now time.Time, digests []pipeline.Digest) (body string, ok bool, err error) {
	sections := make([]pipeline.Digest, 0, len(digests))
	for _, d := range digests {
		if d.Empty() {
			continue
		}
		sections = append(sections, d)
	}
	if len(sections) == 0 {
		return "", false, nil
	}

	data := struct {
		SubjectPrefix string
		Date          string
		Sections      []pipeline.Digest
	}{
		SubjectPrefix: a.subjectPrefix,
		Date:          now.Format("Monday, 02 January 2006"),
		Sections:      sections,
	}

	var b strings.Builder
	if err := a.tmpl.Execute(&b, data); err != nil {
		return "", false, fmt.Errorf("render digest body: %w", err)
	}
	return b.String(), true, nil
}
