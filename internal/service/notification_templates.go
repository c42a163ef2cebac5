package service

import (
	htmltemplate "html/template"
	"io"
	"strings"
	"text/template"
)

var (
	bookingEmailTemplate = template.Must(template.New("booking_email").Parse(`Bonjour {{.PatientName}},

Votre rendez-vous est confirmé.

Date : {{.Date}}
Heure : {{.Time}}
Médecin : Dr {{.DoctorName}}
{{- if .ClinicName}}
Clinique : {{.ClinicName}}{{end}}
{{- if .ClinicAddress}}
Adresse : {{.ClinicAddress}}{{end}}

Pour annuler votre rendez-vous, cliquez sur le lien suivant :
{{.CancelURL}}

À bientôt.
`))

	bookingEmailHTMLTemplate = htmltemplate.Must(htmltemplate.New("booking_email_html").Parse(`<!DOCTYPE html>
<html lang="fr">
<body style="font-family: Arial, sans-serif; color: #222;">
<p>Bonjour {{.PatientName}},</p>
<p>Votre rendez-vous est confirmé.</p>
<table cellpadding="4">
<tr><td><strong>Date</strong></td><td>{{.Date}}</td></tr>
<tr><td><strong>Heure</strong></td><td>{{.Time}}</td></tr>
<tr><td><strong>Médecin</strong></td><td>Dr {{.DoctorName}}</td></tr>
{{- if .ClinicName}}
<tr><td><strong>Clinique</strong></td><td>{{.ClinicName}}</td></tr>{{end}}
{{- if .ClinicAddress}}
<tr><td><strong>Adresse</strong></td><td>{{.ClinicAddress}}</td></tr>{{end}}
</table>
<p><a href="{{.CancelURL}}">Annuler mon rendez-vous</a></p>
<p>À bientôt.</p>
</body>
</html>
`))

	cancellationEmailTemplate = template.Must(template.New("cancellation_email").Parse(`Bonjour {{.PatientName}},

Votre rendez-vous du {{.Date}} à {{.Time}} avec Dr {{.DoctorName}} a bien été annulé.

Vous pouvez reprendre rendez-vous à tout moment.
`))

	bookingSMSTemplate = template.Must(template.New("booking_sms").Parse(
		`{{.PatientName}}, votre RDV du {{.Date}} à {{.Time}} avec Dr {{.DoctorName}}{{if .ClinicName}} ({{.ClinicName}}){{end}} est confirmé. Annulation : {{.CancelURL}}`))
)

type notificationView struct {
	PatientName   string
	Date          string
	Time          string
	DoctorName    string
	ClinicName    string
	ClinicAddress string
	CancelURL     string
}

// executor is satisfied by both text/template and html/template.
type executor interface {
	Execute(w io.Writer, data any) error
}

func render(tmpl executor, view notificationView) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, view); err != nil {
		return "", err
	}
	return b.String(), nil
}
