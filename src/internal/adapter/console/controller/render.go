package controller

import (
	"fmt"

	"github.com/fatih/color"
)

// warningTitles are shown as warnings rather than errors.
var warningTitles = map[string]bool{
	"Invalid Amount":     true,
	"Insufficient Funds": true,
}

type palette struct {
	info    *color.Color
	warning *color.Color
	failure *color.Color
}

func newPalette() palette {
	return palette{
		info:    color.New(color.FgGreen, color.Bold),
		warning: color.New(color.FgYellow, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
	}
}

func (p palette) disable() {
	p.info.DisableColor()
	p.warning.DisableColor()
	p.failure.DisableColor()
}

func (c *Controller) showInfo(title string, text string) {
	c.box(c.palette.info, title, text)
}

func (c *Controller) showError(title string, text string) {
	c.box(c.palette.failure, title, text)
}

func (c *Controller) showFailure(title string, text string) {
	if title == "" {
		title = "Unexpected Error"
	}
	if warningTitles[title] {
		c.box(c.palette.warning, title, text)
		return
	}
	c.box(c.palette.failure, title, text)
}

func (c *Controller) box(style *color.Color, title string, text string) {
	style.Fprintf(c.out, "[%s]", title)
	fmt.Fprintf(c.out, " %s\n", text)
}
