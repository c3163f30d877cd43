package main

import "github.com/atotto/clipboard"

// Clipboard reads and writes plain text.
//
// Errors are reported in the status line and never stop the program.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (systemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }
