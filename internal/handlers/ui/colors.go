package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	CodeColor    = color.New(color.FgWhite).SprintFunc()   // For the alias line users paste by hand
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For paths and step details
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Step status markers used in the install summary.
var (
	StepDoneMark    = SuccessColor("✓")
	StepSkippedMark = DetailColor("-")
	StepWarnedMark  = WarningColor("!")
)

// YesNo renders a boolean for status tables.
func YesNo(b bool) string {
	if b {
		return SuccessColor("yes")
	}
	return WarningColor("no")
}
