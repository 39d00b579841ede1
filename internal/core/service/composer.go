package service

import (
	"strconv"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/i18n"
)

const sectionRule = "------------------------------"

// ComposeOrder builds the checkout message. The output depends only on
// its arguments.
func ComposeOrder(
	d i18n.Dictionary,
	lang domain.Language,
	p domain.Product,
	quantity int,
	c domain.CustomerDetails,
) string {
	form := d.Checkout.Form

	client := []string{
		line(form.Name, c.Name),
		line(form.Phone, c.Phone),
		line(form.Region, c.Region),
		line(form.Commune, c.Commune),
	}

	delivery := []string{
		line(form.Delivery, d.DeliveryTitle(c.DeliveryType)),
		line(form.Address, c.Address),
	}

	sections := []string{
		d.Message.OrderGreeting,
		section(d.Checkout.Recap.Title, recapLines(d, lang, p, quantity)),
		section(d.Checkout.Title, client),
		section(form.Delivery, delivery),
		d.Message.Closing,
	}
	return strings.Join(sections, "\n\n")
}

// ComposeCart builds the shorter add-to-cart message.
func ComposeCart(
	d i18n.Dictionary, lang domain.Language, p domain.Product, quantity int,
) string {
	summary := strings.Join(recapLines(d, lang, p, quantity), "\n")
	return strings.Join(
		[]string{d.Message.CartGreeting, summary, d.Message.Closing}, "\n\n",
	)
}

func recapLines(
	d i18n.Dictionary, lang domain.Language, p domain.Product, quantity int,
) []string {
	recap := d.Checkout.Recap
	total := p.Price * int64(quantity)

	lines := []string{
		line(recap.Product, i18n.Resolve(p.Name, lang)),
		line(recap.Quantity, strconv.Itoa(quantity)),
		line(recap.Total, d.FormatPrice(total)),
		line(recap.Category, i18n.Resolve(p.Category, lang)),
	}
	if need, ok := p.Need.Get(); ok {
		lines = append(lines, line(d.Filters.Usage, d.NeedLabel(need)))
	}
	return lines
}

func section(title string, lines []string) string {
	return title + "\n" + sectionRule + "\n" + strings.Join(lines, "\n")
}

// line renders "label: value". Form input arrives untrimmed, so value
// loses its surrounding whitespace here.
func line(label, value string) string {
	return label + ": " + strings.TrimSpace(value)
}
