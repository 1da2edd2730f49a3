package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// OrderConfirmationData feeds the confirmation email template.
type OrderConfirmationData struct {
	OrderCode   string
	Items       []OrderConfirmationItem
	TotalAmount float64
	DetailLink  string
}

type OrderConfirmationItem struct {
	Name     string
	Quantity int
	Price    float64
}

const orderConfirmationTmpl = `
<h2>Order {{.OrderCode}} confirmed</h2>
<table>
{{range .Items}}<tr><td>{{.Quantity}} x {{.Name}}</td><td>{{printf "%.2f" .Price}}</td></tr>
{{end}}</table>
<p>Total: {{printf "%.2f" .TotalAmount}}</p>
<p><a href="{{.DetailLink}}">View your order</a></p>
`

// SendOrderConfirmationEmail sends the confirmation asynchronously so the
// payment response is not delayed by SMTP.
func SendOrderConfirmationEmail(to string, data OrderConfirmationData) {
	go func() {
		tmpl, err := template.New("order_confirmation").Parse(orderConfirmationTmpl)
		if err != nil {
			log.Printf("failed to parse confirmation template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("failed to render confirmation email: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Order confirmation #"+data.OrderCode)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send confirmation email: %v", err)
		}
	}()
}
