package email

import (
	"bytes"
	htmltemplate "html/template"
	texttemplate "text/template"
)

var contactTextTemplate = texttemplate.Must(texttemplate.New("contact_text").Parse(`New Contact Form Submission

Name: {{.Name}}
Email: {{.Email}}

Message:
{{.Message}}

---
Sent from the GoDev contact form.
`))

var contactHTMLTemplate = htmltemplate.Must(htmltemplate.New("contact_html").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a1a2e; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #1a1a2e; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Contact Form Submission</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div class="value">{{.Name}} ({{.Email}})</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the GoDev contact form.</p>
            <p>To reply, send an email to: {{.Email}}</p>
        </div>
    </div>
</body>
</html>`))

var applicationTextTemplate = texttemplate.Must(texttemplate.New("application_text").Parse(`New Job Application Received

Position: {{.Position}}
Applicant Type: {{.ApplicantType}}

Applicant Details:
- Name: {{.FirstName}} {{.LastName}}
- Email: {{.Email}}
- Phone: {{.Phone}}

Experience:
{{.Experience}}

Cover Letter:
{{.CoverLetter}}

{{if .CVFileURL}}CV/Resume: {{.CVFileURL}}{{else}}No CV uploaded{{end}}

---
Sent from the GoDev careers form.
`))

var applicationHTMLTemplate = htmltemplate.Must(htmltemplate.New("application_html").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Job Application</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1a1a2e; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .section { background: white; padding: 16px; border-radius: 6px; margin-bottom: 14px; }
        .label { font-weight: bold; color: #555; font-size: 12px; text-transform: uppercase; }
        .value { margin-top: 5px; white-space: pre-wrap; }
        .cv-link { display: inline-block; background: #2196F3; color: white; padding: 10px 20px; border-radius: 6px; text-decoration: none; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Job Application</h1>
            <p>GoDev Careers</p>
        </div>
        <div class="content">
            <div class="section">
                <div class="label">Position Applied For</div>
                <div class="value">{{.Position}} ({{.ApplicantType}})</div>
            </div>
            <div class="section">
                <div class="label">Applicant Information</div>
                <div class="value">{{.FirstName}} {{.LastName}}</div>
                <div class="value">Email: <a href="mailto:{{.Email}}">{{.Email}}</a></div>
                <div class="value">Phone: {{.Phone}}</div>
            </div>
            <div class="section">
                <div class="label">Experience</div>
                <div class="value">{{.Experience}}</div>
            </div>
            <div class="section">
                <div class="label">Cover Letter</div>
                <div class="value">{{.CoverLetter}}</div>
            </div>
            {{if .CVFileURL}}
            <div class="section">
                <div class="label">Resume/CV</div>
                <a href="{{.CVFileURL}}" class="cv-link">Download {{if .CVFileName}}{{.CVFileName}}{{else}}Resume{{end}}</a>
            </div>
            {{else}}
            <div class="section">
                <div class="label">Resume/CV</div>
                <div class="value">No CV uploaded</div>
            </div>
            {{end}}
        </div>
        <div class="footer">
            <p>This email was sent from the GoDev careers form.</p>
        </div>
    </div>
</body>
</html>`))

func renderText(tmpl *texttemplate.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
