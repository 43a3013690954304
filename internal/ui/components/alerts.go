// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/helmstream/helmstream-tui/internal/port"
	"github.com/helmstream/helmstream-tui/internal/ui/styles"
	"github.com/helmstream/helmstream-tui/internal/util"
)

// alertCardStyle picks the card style for a severity, or the muted read
// style once the alert has been read.
func alertCardStyle(theme *styles.Theme, severity string, read bool) func(...string) string {
	if read {
		return theme.AlertRead.Render
	}
	switch severity {
	case port.SeverityCritical:
		return theme.AlertCritical.Render
	case port.SeverityWarning:
		return theme.AlertWarning.Render
	default:
		return theme.AlertInfo.Render
	}
}

// RenderAlertsPanel renders the alert list filtered to the given range.
// The header shows the active range and the unread counter; read alerts
// render muted.
func RenderAlertsPanel(theme *styles.Theme, alerts []port.Alert, reads *port.ReadSet,
	dateRange port.DateRange, width int, selected int, focused bool) string {

	title := theme.PanelTitle.Render("Alerts")
	badge := theme.PanelBadge.Render(fmt.Sprintf("%d unread", reads.UnreadCount(alerts)))

	header := title + " " + badge
	if !dateRange.IsZero() {
		header += "  " + theme.RowMuted.Render(formatRange(dateRange))
	}

	var rows []string
	rows = append(rows, header)

	inner := width - 6
	if len(alerts) == 0 {
		rows = append(rows, theme.RowMuted.Render("No alerts in this range"))
	}
	for i, a := range alerts {
		render := alertCardStyle(theme, a.Severity, reads.IsRead(a.ID))

		line := util.TruncateWidth(a.Title, inner)
		meta := theme.RowMuted.Render(a.Timestamp)
		for _, entity := range relatedEntities(a) {
			meta += " " + theme.AlertEntityTag.Render(entity)
		}

		card := render(line) + "\n" + meta
		if a.Insight != "" {
			card += "\n" + theme.AlertInsight.Render(util.TruncateWidth("insight: "+a.Insight, inner))
		}
		if a.SuggestedAction != "" {
			card += "\n" + theme.AlertInsight.Render(util.TruncateWidth("action: "+a.SuggestedAction, inner))
		}

		if focused && i == selected {
			card = theme.RowSelected.Render(">") + " " + card
		}
		rows = append(rows, card)
	}

	box := theme.PanelBox
	if focused {
		box = theme.PanelBoxFocused
	}
	return box.Width(width - 2).Render(strings.Join(rows, "\n"))
}

// relatedEntities returns the entity chips for an alert card. The
// primary vessel leads when it is not already in the related list.
func relatedEntities(a port.Alert) []string {
	entities := a.RelatedEntities
	if a.Vessel == "" {
		return entities
	}
	for _, e := range entities {
		if e == a.Vessel {
			return entities
		}
	}
	return append([]string{a.Vessel}, entities...)
}

// formatRange renders a date range for the panel header.
func formatRange(r port.DateRange) string {
	const layout = "2006-01-02"
	switch {
	case !r.Start.IsZero() && !r.End.IsZero():
		return r.Start.Format(layout) + " to " + r.End.Format(layout)
	case !r.Start.IsZero():
		return "from " + r.Start.Format(layout)
	case !r.End.IsZero():
		return "until " + r.End.Format(layout)
	default:
		return ""
	}
}
