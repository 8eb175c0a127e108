package notify

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/SergeyBogomolovv/storefront/internal/entities"

	"github.com/shopspring/decimal"
)

const confirmationSubject = "Order {{.OrderID}} confirmed"

const confirmationBody = `Hello {{.CustomerName}},

Thank you for your order. Your payment has been received.

Order: {{.OrderID}}
{{range .Lines}}- {{.Name}}{{if .Size}} ({{.Size}}){{end}} x{{.Quantity}} @ {{money .UnitPrice}} = {{money .LineTotal}}
{{end}}
Delivery: {{money .DeliveryCost}}
{{if .DiscountCode}}Discount {{.DiscountCode}}: {{.DiscountPercentage}}%
{{end}}Total: {{money .Total}}
{{if .PaymentReference}}Payment reference: {{.PaymentReference}}
{{end}}`

type Renderer struct {
	subject *template.Template
	body    *template.Template
}

func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
	}
	return &Renderer{
		subject: template.Must(template.New("subject").Parse(confirmationSubject)),
		body:    template.Must(template.New("body").Funcs(funcs).Parse(confirmationBody)),
	}
}

func (r *Renderer) Render(c entities.OrderConfirmation) (subject, body string, err error) {
	var buf bytes.Buffer
	if err := r.subject.Execute(&buf, c); err != nil {
		return "", "", fmt.Errorf("failed to render subject: %w", err)
	}
	subject = buf.String()

	buf.Reset()
	if err := r.body.Execute(&buf, c); err != nil {
		return "", "", fmt.Errorf("failed to render body: %w", err)
	}
	return subject, buf.String(), nil
}
