// templates/labels.go
package templates

import (
	"fmt"
	"html/template"
)

// DefaultLabelClass is the Bootstrap class family DisplayActive uses.
const DefaultLabelClass = "label"

// DisplayActive renders a small yes/no badge: success "Sim" when active,
// danger "Não" otherwise. class picks the family ("label", "badge").
func DisplayActive(active bool, class string) template.HTML {
	kind, content := "danger", "Não"
	if active {
		kind, content = "success", "Sim"
	}
	class = template.HTMLEscapeString(class)
	return template.HTML(fmt.Sprintf("<small class='%s %s-%s'>%s</small>", class, class, kind, content))
}
