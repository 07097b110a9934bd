//go:build dialog
// +build dialog

package main

import (
	"github.com/sqweek/dialog"
)

const nativeDialogs = true

func openCatalogDialog(dir string) (string, error) {
	return dialog.File().Filter("Animation catalog", "anim", "txt").SetStartDir(dir).Title("Open animation catalog").Load()
}

func saveCatalogDialog(dir string) (string, error) {
	return dialog.File().Filter("Animation catalog", "anim").SetStartDir(dir).Title("Save animation catalog").Save()
}

func openTextureDialog(dir string) (string, error) {
	return dialog.File().Filter("Image files", "png", "jpg", "jpeg").SetStartDir(dir).Title("Select texture").Load()
}

func openScriptDialog(dir string) (string, error) {
	return dialog.File().Filter("Pattern script", "tengo").SetStartDir(dir).Title("Run pattern script").Load()
}
