package http

import (
	"bytes"
	"html/template"

	"ordertracker/internal/core/application/widget"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

const listTemplate = `{{if .Placeholder}}<div class="order"><p>{{.Placeholder}}</p></div>{{else}}{{range .Cards}}<div class="order{{if .Active}} active{{end}}" data-id="{{.ID}}">
  <div>
    <h3>{{.Name}}</h3>
    <p>Customer: {{.Customer}}</p>
  </div>
  <div class="meta">
    <span class="badge {{.Status}}">{{.Status}}</span>
    <div class="note">Note: {{if .HasNote}}{{.NoteHTML}}{{else}}{{.Note}}{{end}}</div>
  </div>
  <div class="meta">
    <span>Location: {{.Location}}</span>
  </div>
  <div class="order-actions">{{range .Actions}}
    <button type="button" data-action="{{.Kind}}" data-id="{{.OrderID}}">{{.Label}}</button>{{end}}
  </div>
</div>
{{end}}{{end}}`

// CardRenderer turns a widget.ListView into the markup of the order list.
// Notes are Markdown; raw HTML inside them is dropped.
type CardRenderer struct {
	tmpl *template.Template
	md   goldmark.Markdown
}

type cardData struct {
	widget.CardView
	NoteHTML template.HTML
}

type listData struct {
	Placeholder string
	Cards       []cardData
}

func NewCardRenderer() (*CardRenderer, error) {
	tmpl, err := template.New("list").Parse(listTemplate)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)

	return &CardRenderer{tmpl: tmpl, md: md}, nil
}

// Render produces the list markup.
func (r *CardRenderer) Render(list widget.ListView) (string, error) {
	data := listData{
		Placeholder: list.Placeholder,
		Cards:       make([]cardData, 0, len(list.Cards)),
	}
	for _, card := range list.Cards {
		cd := cardData{CardView: card}
		if card.HasNote {
			note, err := r.markdown(card.Note)
			if err != nil {
				return "", err
			}
			cd.NoteHTML = note
		}
		data.Cards = append(data.Cards, cd)
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *CardRenderer) markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	// goldmark escapes text and omits raw HTML unless WithUnsafe is set.
	return template.HTML(buf.String()), nil //nolint:gosec
}
