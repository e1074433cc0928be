package notify

import (
	"fmt"

	"github.com/matcornic/hermes/v2"
)

// Mail is a rendered email ready for the relay. It is also the message body
// of queued notifications.
type Mail struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

// Renderer turns templates into branded HTML and plain-text bodies.
type Renderer struct {
	h hermes.Hermes
}

// NewRenderer creates a Renderer with the product branding.
func NewRenderer() *Renderer {
	return &Renderer{
		h: hermes.Hermes{
			Theme: new(hermes.Default),
			Product: hermes.Product{
				Name:      "SpeedXpress",
				Link:      "https://speedxpress.com",
				Copyright: "Copyright © SpeedXpress. All rights reserved.",
			},
		},
	}
}

// Render produces the mail for one recipient.
func (r *Renderer) Render(to, subject string, t Template) (*Mail, error) {
	data := make([][]hermes.Entry, 0, len(t.Rows))
	for _, row := range t.Rows {
		entries := make([]hermes.Entry, 0, len(row))
		for _, e := range row {
			entries = append(entries, hermes.Entry{Key: e.Key, Value: e.Value})
		}
		data = append(data, entries)
	}

	email := hermes.Email{
		Body: hermes.Body{
			Name:   t.Name,
			Intros: []string{t.Intro},
			Table:  hermes.Table{Data: data},
			Outros: []string{outro},
		},
	}

	html, err := r.h.GenerateHTML(email)
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	text, err := r.h.GeneratePlainText(email)
	if err != nil {
		return nil, fmt.Errorf("render text: %w", err)
	}
	return &Mail{To: to, Subject: subject, HTML: html, Text: text}, nil
}
