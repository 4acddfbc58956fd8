package vuevreact

import "embed"

// StaticAssets contains the assets shipped with the binary: style.css and
// the default social preview image vite.svg.
//
//go:embed static/*
var StaticAssets embed.FS
