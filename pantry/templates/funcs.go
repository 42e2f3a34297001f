// templates/funcs.go
package templates

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/viewkit/pantry/clock"
	"github.com/dalemusser/viewkit/pantry/dates"
	verrors "github.com/dalemusser/viewkit/pantry/errors"
	"github.com/dalemusser/viewkit/pantry/httpnav"
	"github.com/dalemusser/viewkit/pantry/icons"
	"github.com/dalemusser/viewkit/pantry/mask"
	"github.com/dalemusser/viewkit/pantry/money"
	"github.com/dalemusser/viewkit/pantry/text"
)

// Funcs returns helpers available to all templates, with any functions added
// through RegisterFunc merged on top.
func Funcs() template.FuncMap {
	fm := template.FuncMap{
		// {{ "a b" | urlquery }} → "a+b"
		"urlquery": url.QueryEscape,
		// Mark a string as safe HTML (use sparingly!)
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },

		// Small quality-of-life helpers
		"lower":  strings.ToLower,
		"upper":  strings.ToUpper,
		"join":   strings.Join,
		"printf": func(f string, a ...any) string { return fmt.Sprintf(f, a...) },

		// {{ .Data | toJSON }} → JSON string for use in JavaScript
		"toJSON": func(v any) template.JS {
			b, err := json.Marshal(v)
			if err != nil {
				return template.JS("null")
			}
			return template.JS(b)
		},

		// Text
		"title": text.Title,
		// {{ limit .Body 100 }} or {{ limit .Body 100 " [more]" }}
		"limit": func(s string, n int, end ...string) string {
			e := text.DefaultLimitEnd
			if len(end) > 0 {
				e = end[0]
			}
			return text.Limit(s, n, e)
		},
		"slug": func(s string, sep ...string) string {
			p := text.DefaultSlugSeparator
			if len(sep) > 0 {
				p = sep[0]
			}
			return text.Slug(s, p)
		},

		// Masks: {{ mask .CPF "###.###.###-##" }}
		"mask": func(value, tmpl string, placeholder ...string) string {
			p := mask.DefaultPlaceholder
			if len(placeholder) > 0 && placeholder[0] != "" {
				p = []rune(placeholder[0])[0]
			}
			return mask.MaskWith(value, tmpl, p)
		},
		"unmask": mask.Unmask,

		// Money: {{ centsToMoney .PriceCents "R$ " }}
		"centsToMoney": money.CentsToDisplay,
		"moneyToCents": money.DisplayToCents,

		// Durations: {{ sumTimes "06:15" "01:30" }}
		"sumTimes": clock.Sum,

		// Dates
		"parseDate": parseDate,
		"brDate":    brDate,

		"iconByMime": icons.ByMime,

		// Navigation; pass the RouteContext from the view data.
		// {{ activeByRoute .Route "" "users" "groups" }}
		"isCurrentRoute": httpnav.IsCurrentRoute,
		"activeByRoute":  httpnav.ActiveByRoute,
		"activeByURL":    httpnav.ActiveByURL,

		"displayActive": func(active bool, class ...string) template.HTML {
			c := DefaultLabelClass
			if len(class) > 0 && class[0] != "" {
				c = class[0]
			}
			return DisplayActive(active, c)
		},
	}

	customFuncsMu.RLock()
	for k, v := range customFuncs {
		fm[k] = v
	}
	customFuncsMu.RUnlock()

	return fm
}

var (
	customFuncsMu sync.RWMutex
	customFuncs   = template.FuncMap{}
)

// RegisterFunc adds a custom template function to every FuncMap returned by
// Funcs afterwards. A name already in use is replaced.
func RegisterFunc(name string, fn any) {
	customFuncsMu.Lock()
	defer customFuncsMu.Unlock()
	customFuncs[name] = fn
}

// parseDate resolves s with the date resolver and fails the template when
// nothing matches.
func parseDate(s string) (time.Time, error) {
	t, ok, err := dates.Parse(s, strings.Count(s, ":") == 2)
	if err != nil {
		return time.Time{}, err
	}
	if !ok {
		return time.Time{}, verrors.NoMatch(fmt.Sprintf("%q matches no known date format", s))
	}
	return t, nil
}

// brDate renders US or BR date text as DD/MM/YYYY, keeping the time of day
// when the input carried one. Text that cannot be resolved is returned as-is.
func brDate(s string) string {
	withSeconds := strings.Count(s, ":") == 2
	t, ok, err := dates.Parse(s, withSeconds)
	if err != nil || !ok {
		return s
	}
	if dates.HasUSDateFormat(s) || dates.HasBRDateFormat(s) {
		return dates.FormatBR(t)
	}
	return dates.FormatBRDateTime(t, withSeconds)
}
