package tui

import "github.com/aldebaro/hd-organizer/pkg/report"

type docLoadedMsg struct {
	doc *report.DuplicatesDocument
}

type errMsg error
