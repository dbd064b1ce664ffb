// Package theme holds the color token palettes shared with the mobile
// clients and the severity/risk color mappings used when rendering feed
// entries.
package theme

import "strings"

// Theme is one set of color tokens.
type Theme struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Border     string `json:"border"`
	Card       string `json:"card"`
	Error      string `json:"error"`
	Success    string `json:"success"`
	Warning    string `json:"warning"`
}

var Light = Theme{
	Background: "#f3f4f6",
	Text:       "#1f2937",
	Primary:    "#0369a1",
	Secondary:  "#6b7280",
	Accent:     "#0284c7",
	Border:     "#e5e7eb",
	Card:       "#ffffff",
	Error:      "#dc2626",
	Success:    "#059669",
	Warning:    "#d97706",
}

var Dark = Theme{
	Background: "#111827",
	Text:       "#f3f4f6",
	Primary:    "#38bdf8",
	Secondary:  "#9ca3af",
	Accent:     "#0284c7",
	Border:     "#374151",
	Card:       "#1f2937",
	Error:      "#ef4444",
	Success:    "#10b981",
	Warning:    "#f59e0b",
}

// Select returns the palette for a system color scheme string.
func Select(scheme string) Theme {
	if strings.EqualFold(scheme, "dark") {
		return Dark
	}
	return Light
}

// AlertSeverityColor maps an alert severity to a display color.
// Unrecognized severities fall back to the primary token.
func AlertSeverityColor(severity string, t Theme) string {
	switch strings.ToLower(severity) {
	case "critical":
		return t.Error
	case "severe":
		return "#FF4500" // Orange Red
	case "moderate":
		return t.Warning
	case "minor":
		return t.Success
	default:
		return t.Primary
	}
}

// RiskLevelColor maps an AI report risk level to a display color.
// Unrecognized levels fall back to the primary token.
func RiskLevelColor(riskLevel string, t Theme) string {
	switch strings.ToLower(riskLevel) {
	case "extreme":
		return t.Error
	case "high":
		return "#FF4500" // Orange Red
	case "moderate":
		return t.Warning
	case "low":
		return t.Success
	default:
		return t.Primary
	}
}

// ZoneRiskColor maps a flood zone risk level to its fill color token.
func ZoneRiskColor(riskLevel string, t Theme) string {
	switch strings.ToLower(riskLevel) {
	case "high":
		return t.Error
	case "moderate":
		return t.Warning
	case "low":
		return t.Success
	default:
		return t.Primary
	}
}
