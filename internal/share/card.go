package share

import (
	"bytes"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// CardData is what ends up on a printable share card: the storefront
// identity, the product headline and the scannable link.
type CardData struct {
	CompanyName string
	ProductName string
	Price       string
	Description string
	URL         string
}

// Card renders a one-page A5 share card with a QR code pointing at the
// public product page.
func Card(data CardData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithDimensions(148, 210).
		Build()

	m := maroto.New(cfg)

	m.AddRow(20,
		text.NewCol(12, data.CompanyName, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Center,
			Top:   5,
		}),
	)

	m.AddRow(30,
		col.New(12).Add(
			text.New(data.ProductName, props.Text{
				Size:  14,
				Style: fontstyle.Bold,
				Align: align.Center,
			}),
			text.New(data.Price, props.Text{
				Size:  12,
				Align: align.Center,
				Top:   10,
			}),
		),
	)

	if data.Description != "" {
		m.AddRow(25,
			text.NewCol(12, data.Description, props.Text{
				Size:  9,
				Align: align.Center,
			}),
		)
	}

	m.AddRow(80,
		col.New(3),
		code.NewQrCol(6, data.URL, props.Rect{
			Center:  true,
			Percent: 90,
		}),
		col.New(3),
	)

	m.AddRow(10,
		text.NewCol(12, data.URL, props.Text{
			Size:  8,
			Align: align.Center,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(doc.GetBytes()), nil
}
