//go:build !dialog
// +build !dialog

package main

import "errors"

const nativeDialogs = false

var errNoDialog = errors.New("native file dialog unavailable; build with -tags dialog to enable")

func openCatalogDialog(string) (string, error) { return "", errNoDialog }
func saveCatalogDialog(string) (string, error) { return "", errNoDialog }
func openTextureDialog(string) (string, error) { return "", errNoDialog }
func openScriptDialog(string) (string, error)  { return "", errNoDialog }
