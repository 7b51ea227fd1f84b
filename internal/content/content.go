// Package content holds the portfolio copy and turns each section into
// Markdown.
package content

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"folio/internal/nav"
)

type Profile struct {
	Name    string `koanf:"name" yaml:"name"`
	Role    string `koanf:"role" yaml:"role"`
	Tagline string `koanf:"tagline" yaml:"tagline"`
	Avatar  string `koanf:"avatar" yaml:"avatar,omitempty"`
}

type About struct {
	Body   string   `koanf:"body" yaml:"body"`
	Skills []string `koanf:"skills" yaml:"skills"`
}

type Project struct {
	Name    string   `koanf:"name" yaml:"name"`
	Summary string   `koanf:"summary" yaml:"summary"`
	Stack   []string `koanf:"stack" yaml:"stack,omitempty"`
	URL     string   `koanf:"url" yaml:"url,omitempty"`
}

type Contact struct {
	Email    string `koanf:"email" yaml:"email,omitempty"`
	Phone    string `koanf:"phone" yaml:"phone,omitempty"`
	LinkedIn string `koanf:"linkedin" yaml:"linkedin,omitempty"`
	GitHub   string `koanf:"github" yaml:"github,omitempty"`
	WhatsApp string `koanf:"whatsapp" yaml:"whatsapp,omitempty"`
}

// Portfolio is everything shown on the page.
type Portfolio struct {
	Profile  Profile   `koanf:"profile" yaml:"profile"`
	About    About     `koanf:"about" yaml:"about"`
	Projects []Project `koanf:"projects" yaml:"projects"`
	Contact  Contact   `koanf:"contact" yaml:"contact"`
}

// Default is the sample portfolio written by `folio init`.
func Default() *Portfolio {
	return &Portfolio{
		Profile: Profile{
			Name:    "Sam Rivera",
			Role:    "Frontend Developer",
			Tagline: "I build small, fast interfaces and the tooling around them.",
		},
		About: About{
			Body: "I enjoy turning rough ideas into interfaces people like to use. " +
				"Most of my work sits between design and engineering: component " +
				"libraries, layout systems and the build pipelines that ship them.",
			Skills: []string{"TypeScript", "Go", "CSS layout", "Accessibility basics", "CI/CD"},
		},
		Projects: []Project{
			{
				Name:    "Service desk manager",
				Summary: "Ticket triage board with drag-and-drop queues and SLA timers.",
				Stack:   []string{"React", "Node", "PostgreSQL"},
				URL:     "https://github.com/example/sdm",
			},
			{
				Name:    "Terminal portfolio",
				Summary: "This page, rendered in a terminal with scroll-tracked navigation.",
				Stack:   []string{"Go", "Bubble Tea", "Glamour"},
				URL:     "https://github.com/example/folio",
			},
		},
		Contact: Contact{
			Email:    "sam@example.com",
			Phone:    "+1 555 0100",
			LinkedIn: "https://www.linkedin.com/in/example",
			GitHub:   "https://github.com/example",
		},
	}
}

// Load reads a portfolio YAML file over Default. Keys absent from the file
// keep their sample values.
func Load(path string) (*Portfolio, error) {
	p := Default()
	if path == "" {
		return p, nil
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	// Lists replace the sample rather than merging into it element-wise.
	if k.Exists("projects") {
		p.Projects = nil
	}
	if k.Exists("about.skills") {
		p.About.Skills = nil
	}
	if err := k.Unmarshal("", p); err != nil {
		return nil, fmt.Errorf("unmarshalling content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return p, nil
}

// Save writes the portfolio to path as YAML.
func (p *Portfolio) Save(path string) error {
	data, err := yamlv3.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshalling content: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing content to %s: %w", path, err)
	}
	return nil
}

func (p *Portfolio) Validate() error {
	if strings.TrimSpace(p.Profile.Name) == "" {
		return fmt.Errorf("profile.name is required")
	}
	for i, pr := range p.Projects {
		if strings.TrimSpace(pr.Name) == "" {
			return fmt.Errorf("projects[%d].name is required", i)
		}
	}
	return nil
}

// Markdown returns the Markdown body of the section with the given id, or
// "" for an unknown id.
func (p *Portfolio) Markdown(id string) string {
	var b strings.Builder
	switch id {
	case nav.Home:
		fmt.Fprintf(&b, "# %s\n\n", p.Profile.Name)
		if p.Profile.Role != "" {
			fmt.Fprintf(&b, "**%s**\n\n", p.Profile.Role)
		}
		if p.Profile.Tagline != "" {
			fmt.Fprintf(&b, "%s\n", p.Profile.Tagline)
		}
	case nav.About:
		b.WriteString("## About\n\n")
		if p.About.Body != "" {
			fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(p.About.Body))
		}
		if len(p.About.Skills) > 0 {
			b.WriteString("### Skills\n\n")
			for _, s := range p.About.Skills {
				fmt.Fprintf(&b, "- %s\n", s)
			}
			b.WriteString("\n")
		}
		b.WriteString("[Get in touch](#contact)\n")
	case nav.Projects:
		b.WriteString("## Projects\n\n")
		for _, pr := range p.Projects {
			fmt.Fprintf(&b, "### %s\n\n", pr.Name)
			if pr.Summary != "" {
				fmt.Fprintf(&b, "%s\n\n", pr.Summary)
			}
			if len(pr.Stack) > 0 {
				fmt.Fprintf(&b, "*%s*\n\n", strings.Join(pr.Stack, " · "))
			}
			if pr.URL != "" {
				fmt.Fprintf(&b, "[Source](%s)\n\n", pr.URL)
			}
		}
	case nav.Contact:
		b.WriteString("## Contact\n\n")
		for _, l := range p.ContactLinks() {
			fmt.Fprintf(&b, "- %s: [%s](%s)\n", l.Label, l.Text, l.URL)
		}
	}
	return b.String()
}

// Link is one contact or social destination.
type Link struct {
	Label string
	Text  string
	URL   string
}

// ContactLinks lists the configured contact channels in display order.
func (p *Portfolio) ContactLinks() []Link {
	c := p.Contact
	var out []Link
	if c.Email != "" {
		out = append(out, Link{"Email", c.Email, "mailto:" + c.Email})
	}
	if c.Phone != "" {
		out = append(out, Link{"Phone", c.Phone, "tel:" + strings.ReplaceAll(c.Phone, " ", "")})
	}
	if c.LinkedIn != "" {
		out = append(out, Link{"LinkedIn", trimScheme(c.LinkedIn), c.LinkedIn})
	}
	if c.GitHub != "" {
		out = append(out, Link{"GitHub", trimScheme(c.GitHub), c.GitHub})
	}
	if c.WhatsApp != "" {
		out = append(out, Link{"WhatsApp", c.WhatsApp, "https://wa.me/" + strings.TrimLeft(strings.ReplaceAll(c.WhatsApp, " ", ""), "+")})
	}
	return out
}

func trimScheme(u string) string {
	u = strings.TrimPrefix(u, "https://")
	u = strings.TrimPrefix(u, "http://")
	return strings.TrimSuffix(u, "/")
}
