package mail

import (
	_ "embed"
	"html/template"
)

//go:embed verification.html.tmpl
var verificationHTML string

var verificationTmpl = template.Must(template.New("verification").Parse(verificationHTML))

type verificationData struct {
	Username  string
	Code      string
	VerifyURL string
}
