package app

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/a-h/templ"
)

type navLink struct {
	label string
	route Route
}

var navLinks = []navLink{
	{label: "Home", route: routes[0]},
	{label: "Catalog", route: routes[1]},
	{label: "Admin", route: routes[2]},
}

// NavBar renders the site navigation. The link whose view equals active is
// marked with class "active" and aria-current.
func NavBar(brand, basePath string, active View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder

		sb.WriteString(`<nav class="main-nav" data-view="`)
		sb.WriteString(templ.EscapeString(active.String()))
		sb.WriteString(`"><a class="nav-logo-text" href="`)
		sb.WriteString(templ.EscapeString(link(basePath, "/")))
		sb.WriteString(`"><h4>`)
		sb.WriteString(templ.EscapeString(brand))
		sb.WriteString(`</h4></a><ul class="main-menu">`)

		for _, l := range navLinks {
			sb.WriteString(`<li><a href="`)
			sb.WriteString(templ.EscapeString(link(basePath, l.route.Pattern)))
			sb.WriteString(`"`)
			if l.route.View == active {
				sb.WriteString(` class="active" aria-current="page"`)
			}
			sb.WriteString(`>`)
			sb.WriteString(templ.EscapeString(l.label))
			sb.WriteString(`</a></li>`)
		}

		sb.WriteString(`</ul></nav>`)

		_, err := io.WriteString(w, sb.String())
		return err
	})
}

// ProductPrice renders the featured price. It takes no inputs and always
// produces the same markup.
func ProductPrice() templ.Component {
	return PriceTag(featuredPrice)
}

// PriceTag renders p inside a product-price-container.
func PriceTag(p Price) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<div class="product-price-container"><span>`+
				templ.EscapeString(p.Currency)+
				`</span><h3>`+
				templ.EscapeString(p.FormatAmount())+
				`</h3></div>`)
		return err
	})
}

func link(basePath, pattern string) string {
	if basePath == "" || basePath == "/" {
		return pattern
	}
	return path.Join(basePath, pattern)
}
