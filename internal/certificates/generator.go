package certificates

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Generator renders a durable participation document and returns its
// storage locator.
type Generator interface {
	Render(volunteerName, eventTitle, hoursText string, issuedAt time.Time) (string, error)
}

const documentTemplate = `<!DOCTYPE html>
<html>
<head><title>Certificate of Participation</title></head>
<body>
  <h1>Certificate of Participation</h1>
  <p>This certifies that</p>
  <h2>{{.VolunteerName}}</h2>
  <p>volunteered at</p>
  <h3>{{.EventTitle}}</h3>
  <p>contributing {{.HoursText}} of community service.</p>
  <p>{{.OrganizationName}}</p>
  <p>{{.IssueDate}}</p>
</body>
</html>
`

// FileGenerator writes certificate documents into a local directory and
// returns a path under /certificates/ that the server serves statically.
type FileGenerator struct {
	dir     string
	orgName string
	tmpl    *template.Template
}

func NewFileGenerator(dir, orgName string) (*FileGenerator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create certificate dir: %w", err)
	}
	tmpl, err := template.New("certificate").Parse(documentTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse certificate template: %w", err)
	}
	return &FileGenerator{dir: dir, orgName: orgName, tmpl: tmpl}, nil
}

func (g *FileGenerator) Render(volunteerName, eventTitle, hoursText string, issuedAt time.Time) (string, error) {
	name := uuid.NewString() + ".html"
	path := filepath.Join(g.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create certificate document: %w", err)
	}
	defer f.Close()

	data := struct {
		VolunteerName    string
		EventTitle       string
		HoursText        string
		OrganizationName string
		IssueDate        string
	}{
		VolunteerName:    volunteerName,
		EventTitle:       eventTitle,
		HoursText:        hoursText,
		OrganizationName: g.orgName,
		IssueDate:        issuedAt.Format("January 2, 2006"),
	}

	if err := g.tmpl.Execute(f, data); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("render certificate document: %w", err)
	}

	return "/certificates/" + name, nil
}
