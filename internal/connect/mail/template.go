package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// Kind names a template.
type Kind string

const (
	SignUpOTP Kind = "sign_up_otp"
)

var subjects = map[Kind]string{
	SignUpOTP: "Connect++ - Sign Up (OTP)",
}

// SignUpOTPData fills the SignUpOTP template.
type SignUpOTPData struct {
	Name     string
	OTP      string
	ValidFor time.Duration
}

// Validity renders ValidFor for the mail body, e.g. "24 hours" or "3 days".
func (d SignUpOTPData) Validity() string {
	return humanDuration(d.ValidFor)
}

func humanDuration(d time.Duration) string {
	const day = 24 * time.Hour
	switch {
	case d <= 0:
		return "a limited time"
	case d >= 2*day && d%day == 0:
		return plural(int(d/day), "day")
	case d >= time.Hour && d%time.Hour == 0:
		return plural(int(d/time.Hour), "hour")
	case d >= time.Minute && d%time.Minute == 0:
		return plural(int(d/time.Minute), "minute")
	}
	return d.Round(time.Second).String()
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// Templates holds the parsed, embedded email templates.
type Templates struct {
	set *template.Template
}

func NewTemplates() (*Templates, error) {
	set, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("mail: parse templates: %w", err)
	}
	return &Templates{set: set}, nil
}

// Render executes the template for kind and returns its subject and body.
func (t *Templates) Render(kind Kind, data any) (subject, html string, err error) {
	subject, ok := subjects[kind]
	if !ok {
		return "", "", fmt.Errorf("mail: unknown template %q", kind)
	}

	var buf bytes.Buffer
	if err := t.set.ExecuteTemplate(&buf, string(kind)+".html", data); err != nil {
		return "", "", fmt.Errorf("mail: render %s: %w", kind, err)
	}
	return subject, buf.String(), nil
}
