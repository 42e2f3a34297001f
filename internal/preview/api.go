package preview

import (
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/dalemusser/viewkit/httputil"
	"github.com/dalemusser/viewkit/metrics"
	"github.com/dalemusser/viewkit/pantry/clock"
	"github.com/dalemusser/viewkit/pantry/dates"
	verrors "github.com/dalemusser/viewkit/pantry/errors"
	"github.com/dalemusser/viewkit/pantry/icons"
	"github.com/dalemusser/viewkit/pantry/mask"
	"github.com/dalemusser/viewkit/pantry/money"
)

// Helper labels for metrics.ObserveHelper.
const (
	helperDates = "dates"
	helperMask  = "mask"
	helperMoney = "money"
	helperCents = "cents"
	helperTimes = "times"
	helperIcon  = "icon"
)

func (h *Handler) wrap(fn verrors.ErrorHandlerFunc) http.HandlerFunc {
	return verrors.WrapWithLogger(fn, h.logger)
}

// observe records the helper outcome and passes err through.
func observe(helper string, err error) error {
	outcome := metrics.OutcomeOK
	switch {
	case err == nil:
	case verrors.Is(err, verrors.ErrNoMatch):
		outcome = metrics.OutcomeNoMatch
	default:
		outcome = metrics.OutcomeInvalid
	}
	metrics.ObserveHelper(helper, outcome)
	return err
}

type datesResponse struct {
	Value           string `json:"value"`
	USDate          bool   `json:"us_date"`
	USDateTime      bool   `json:"us_datetime"`
	USDateTimeLocal bool   `json:"us_datetime_local"`
	BRDate          bool   `json:"br_date"`
	BRDateTime      bool   `json:"br_datetime"`
	Layout          string `json:"layout"`
	Time            string `json:"time"`
	BR              string `json:"br"`
}

// GET /api/dates?value=&seconds=
// Times resolve in UTC so responses do not depend on the host zone.
func (h *Handler) dates(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	value := q.Get("value")
	withSeconds, err := boolParam(q.Get("seconds"), "seconds")
	if err != nil {
		return observe(helperDates, err)
	}

	t, ok, err := dates.ParseInLocation(value, withSeconds, time.UTC)
	switch {
	case !ok:
		err = verrors.NoMatch(strconv.Quote(value) + " matches no known date format").
			WithDetail("value", value)
	case err != nil:
		err = verrors.CalendarInvalid(err).WithDetail("value", value)
	}
	if err := observe(helperDates, err); err != nil {
		return err
	}

	layout, _ := dates.Layout(value, withSeconds)
	br := dates.FormatBR(t)
	if dates.HasUSDateTimeFormat(value, withSeconds) || dates.HasUSDateTimeLocalFormat(value, withSeconds) ||
		dates.HasBRDateTimeFormat(value, withSeconds) {
		br = dates.FormatBRDateTime(t, withSeconds)
	}

	httputil.WriteJSON(w, http.StatusOK, datesResponse{
		Value:           value,
		USDate:          dates.HasUSDateFormat(value),
		USDateTime:      dates.HasUSDateTimeFormat(value, withSeconds),
		USDateTimeLocal: dates.HasUSDateTimeLocalFormat(value, withSeconds),
		BRDate:          dates.HasBRDateFormat(value),
		BRDateTime:      dates.HasBRDateTimeFormat(value, withSeconds),
		Layout:          layout,
		Time:            t.Format(time.RFC3339),
		BR:              br,
	})
	return nil
}

// GET /api/mask?value=&template=&placeholder=
func (h *Handler) mask(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	tmpl := q.Get("template")
	if tmpl == "" {
		return observe(helperMask, verrors.InvalidInput("template is required"))
	}

	placeholder := h.cfg.Helpers.Placeholder()
	if p := q.Get("placeholder"); p != "" {
		if utf8.RuneCountInString(p) != 1 {
			return observe(helperMask, verrors.InvalidInput("placeholder must be exactly one character").
				WithDetail("placeholder", p))
		}
		placeholder, _ = utf8.DecodeRuneInString(p)
	}

	masked := mask.MaskWith(q.Get("value"), tmpl, placeholder)
	_ = observe(helperMask, nil)
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"masked":   masked,
		"unmasked": mask.Unmask(masked, mask.Literals(tmpl, placeholder)...),
	})
	return nil
}

// GET /api/money?cents=&prefix=
func (h *Handler) money(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	cents, err := strconv.ParseInt(q.Get("cents"), 10, 64)
	if err != nil {
		return observe(helperMoney, verrors.InvalidInput("cents must be an integer").
			WithDetail("cents", q.Get("cents")))
	}
	_ = observe(helperMoney, nil)
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"display": money.CentsToDisplay(cents, h.prefix(r)),
	})
	return nil
}

// GET /api/cents?text=&prefix=
func (h *Handler) cents(w http.ResponseWriter, r *http.Request) error {
	out, err := money.DisplayToCents(r.URL.Query().Get("text"), r.URL.Query().Get("prefix"))
	if err := observe(helperCents, err); err != nil {
		return err
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"cents": out})
	return nil
}

type timesRequest struct {
	Times []string `json:"times"`
}

// POST /api/times {"times":["06:15","01:30"]}
func (h *Handler) times(w http.ResponseWriter, r *http.Request) error {
	var req timesRequest
	if err := httputil.BindJSON(r, &req); err != nil {
		return observe(helperTimes, verrors.InvalidInput(err.Error()))
	}
	total, err := clock.Sum(req.Times...)
	if err := observe(helperTimes, err); err != nil {
		return err
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"total": total})
	return nil
}

// GET /api/icon?mime=&class=
func (h *Handler) icon(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	_ = observe(helperIcon, nil)
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"class": icons.ByMime(q.Get("mime"), q.Get("class")),
	})
	return nil
}

// prefix returns the request's prefix, or the configured default when the
// parameter is absent. An explicit empty prefix is honored.
func (h *Handler) prefix(r *http.Request) string {
	if q := r.URL.Query(); q.Has("prefix") {
		return q.Get("prefix")
	}
	return h.cfg.Helpers.MoneyPrefix
}

func boolParam(v, name string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, verrors.InvalidInput(name + " must be a boolean").WithDetail(name, v)
	}
	return b, nil
}
