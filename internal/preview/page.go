package preview

import (
	"bytes"
	"net/http"

	verrors "github.com/dalemusser/viewkit/pantry/errors"
	"github.com/dalemusser/viewkit/pantry/httpnav"
	"github.com/dalemusser/viewkit/pantry/mask"
)

// sample is one row of the demo page.
type sample struct {
	Title    string
	Document string
	Template string
	Cents    int64
	Start    string
	Extra    string
	Date     string
	Mime     string
	Active   bool
}

type homeData struct {
	Route       httpnav.RouteContext
	Placeholder string
	Prefix      string
	Samples     []sample
}

var homeSamples = []sample{
	{
		Title:    "invoice for são paulo office",
		Document: "12345678900",
		Template: mask.CPF,
		Cents:    542100,
		Start:    "06:15",
		Extra:    "06:15",
		Date:     "2020-10-09",
		Mime:     "application/pdf",
		Active:   true,
	},
	{
		Title:    "quarterly spreadsheet export for the finance team",
		Document: "11222333000181",
		Template: mask.CNPJ,
		Cents:    -5421,
		Start:    "23:45",
		Extra:    "01:30",
		Date:     "09/10/2020 08:30",
		Mime:     "text/csv; charset=utf-8",
		Active:   false,
	},
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) error {
	data := homeData{
		Route:       httpnav.FromRequest(r),
		Placeholder: string(h.cfg.Helpers.Placeholder()),
		Prefix:      h.cfg.Helpers.MoneyPrefix,
		Samples:     homeSamples,
	}

	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		return verrors.Wrap(err, verrors.CodeInternalError, "failed to render page", http.StatusInternalServerError)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
	return nil
}
