// Package ui provides terminal styling for the CLI's human-facing output.
//
// Command results are Markdown written to stdout. Everything in this
// package that is not Markdown (errors, tips, warnings, progress) goes to
// stderr so piping stdout stays clean.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Brand colors.
var (
	// Primary brand color
	Indigo = lipgloss.Color("#6C5CE7")

	// Secondary colors
	Teal    = lipgloss.Color("#14B8A6")
	Red     = lipgloss.Color("#EF4444")
	Amber   = lipgloss.Color("#F59E0B")
	Green   = lipgloss.Color("#22C55E")
	Gray    = lipgloss.Color("#6B7280")
	DimGray = lipgloss.Color("#9CA3AF")
)

// Text styles.
var (
	// TitleStyle for main headings
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Indigo)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// WarningStyle for warning messages
	WarningStyle = lipgloss.NewStyle().
			Foreground(Amber)

	// InfoStyle for informational messages
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))

	// DimStyle for less important text
	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	// TipStyle for the hint printed under an error
	TipStyle = lipgloss.NewStyle().
			Foreground(Teal).
			Italic(true)

	// LinkStyle for URLs
	LinkStyle = lipgloss.NewStyle().
			Foreground(Indigo).
			Underline(true)
)

// Progress bar styles.
var (
	// ProgressBarStyle for the progress bar container
	ProgressBarStyle = lipgloss.NewStyle().
				Foreground(Indigo)

	// ProgressFailedStyle for the failure counter
	ProgressFailedStyle = lipgloss.NewStyle().
				Foreground(Red)
)
