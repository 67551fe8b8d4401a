// ============================================================================
// pwdgen - Passwort-Generator
// ============================================================================
//
// Package:     pwdgen
// Description: Styles for the pwdgen window
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package pwdgen

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorBgPanel = lipgloss.Color("#1E293B") // Slate 800
	ColorBgHover = lipgloss.Color("#334155") // Slate 700

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2).
			MarginBottom(1)
)

// Group styles
var (
	GroupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	FocusedGroupStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	GroupTitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)
)

// Slider styles
var (
	SliderLabelStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Width(22)

	FocusedSliderLabelStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true).
				Width(22)

	SliderValueStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true)
)

// Button styles
var (
	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorBgPanel).
			Padding(0, 2).
			MarginRight(2)

	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorPrimary).
				Bold(true).
				Padding(0, 2).
				MarginRight(2)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim).
				Background(ColorBgHover).
				Strikethrough(true).
				Padding(0, 2).
				MarginRight(2)
)

// Result styles
var (
	PasswordStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	EmptyResultStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim).
				Italic(true)
)

// Notification styles
var (
	noticeBase = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			Padding(1, 3).
			Width(48).
			Align(lipgloss.Center)

	NoticeInfoStyle    = noticeBase.BorderForeground(ColorSuccess)
	NoticeWarningStyle = noticeBase.BorderForeground(ColorWarning)
	NoticeErrorStyle   = noticeBase.BorderForeground(ColorError)

	NoticeTitleStyle = lipgloss.NewStyle().Bold(true)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		MarginTop(1)
)

// Logo
const Logo = "pwdgen"
