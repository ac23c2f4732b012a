package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

var welcomeTpl = template.Must(template.New(TemplateWelcome).Parse(`
<h2>Welcome to {{.AppName}}, {{.Name}}!</h2>
<p>Your account is ready. Browse the catalog and get fresh groceries delivered to your door.</p>
`))

var orderConfirmationTpl = template.Must(template.New(TemplateOrderConfirmation).Parse(`
<h2>Order {{.OrderID}} confirmed</h2>
<p>Hi {{.Name}}, we received your order and started preparing it.</p>
<table>
{{range .Items}}<tr><td>{{.Name}}</td><td>x{{.Quantity}}</td><td>${{printf "%.2f" .Price}}</td></tr>
{{end}}</table>
<p>Delivery fee: ${{printf "%.2f" .DeliveryFee}}<br>Total: <b>${{printf "%.2f" .Total}}</b></p>
<p>Delivery address: {{.Address}}</p>
`))

// Render renders a named template with data and returns subject and HTML body.
func Render(name string, data map[string]any) (subject, html string, err error) {
	var tpl *template.Template
	switch name {
	case TemplateWelcome:
		subject = "Welcome aboard"
		tpl = welcomeTpl
	case TemplateOrderConfirmation:
		subject = fmt.Sprintf("Your order %v is confirmed", data["OrderID"])
		tpl = orderConfirmationTpl
	default:
		return "", "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}
