package tokens

import (
	"github.com/artuross/pineapple/internal/pineapple/lexer"
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorKeyword = lipgloss.Color("#7C3AED")
	colorString  = lipgloss.Color("#10B981")
	colorIllegal = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles
var (
	typeStyle = lipgloss.NewStyle().
			Width(12).
			Foreground(colorMuted)

	keywordStyle = lipgloss.NewStyle().
			Foreground(colorKeyword).
			Bold(true)

	stringStyle = lipgloss.NewStyle().
			Foreground(colorString)

	illegalStyle = lipgloss.NewStyle().
			Foreground(colorIllegal).
			Underline(true)

	plainValueStyle = lipgloss.NewStyle()
)

func valueStyle(tokenType lexer.TokenType) lipgloss.Style {
	switch tokenType {
	case lexer.TokenTypeLet:
		return keywordStyle

	case lexer.TokenTypeString:
		return stringStyle

	case lexer.TokenTypeIllegal:
		return illegalStyle

	default:
		return plainValueStyle
	}
}
